package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile    string
	outputFile string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "linkage",
	Short: "Single-linkage clustering of 3-D integer points",
	Long: `linkage clusters integer points in 3-D space by consuming every pair of
points in ascending distance order, merging points into clusters as it goes.

Input files hold one "x,y,z" triple per line. Files ending in .zst are
read through zstd.

Examples:
  # Cluster a file, snapshot after 1000 pairs, print a table
  linkage run -f points.txt --format table

  # Read from stdin and emit JSON
  cat points.txt | linkage run -f - --json

  # Generate 1000 random points, compressed
  linkage gen -n 1000 -o points.txt.zst
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every linking step to stderr")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(versionCmd)
}
