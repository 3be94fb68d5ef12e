package commands

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/TrevorS/linkage"
)

var (
	genCount int
	genSeed  int64
	genBound int
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Write a random point file",
	Long: `Write uniformly random points with coordinates in [0, bound).

With -o ending in .zst the file is zstd-compressed; without -o the points
go to stdout.`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().IntVarP(&genCount, "count", "n", 1000, "number of points")
	genCmd.Flags().Int64Var(&genSeed, "seed", 42, "random seed")
	genCmd.Flags().IntVar(&genBound, "bound", 100000, "exclusive upper bound of every coordinate")
}

func runGen(cmd *cobra.Command, args []string) error {
	if genCount < 0 {
		return fmt.Errorf("count must be >= 0, got %d", genCount)
	}
	if genBound < 1 {
		return fmt.Errorf("bound must be >= 1, got %d", genBound)
	}

	points := randomPoints(rand.New(rand.NewSource(genSeed)), genCount, genBound)

	if outputFile == "" {
		return linkage.WritePoints(cmd.OutOrStdout(), points)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if strings.HasSuffix(outputFile, ".zst") {
		enc, err := zstd.NewWriter(f)
		if err != nil {
			return fmt.Errorf("failed to create zstd writer: %w", err)
		}
		if err := linkage.WritePoints(enc, points); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	}
	return linkage.WritePoints(f, points)
}

func randomPoints(rng *rand.Rand, n, bound int) []linkage.Point {
	points := make([]linkage.Point, n)
	for i := range points {
		points[i] = linkage.Point{X: rng.Intn(bound), Y: rng.Intn(bound), Z: rng.Intn(bound)}
	}
	return points
}
