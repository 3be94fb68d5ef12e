package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"

	"github.com/TrevorS/linkage"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	// FormatYAML outputs as YAML (default)
	FormatYAML OutputFormat = "yaml"
	// FormatJSON outputs as JSON
	FormatJSON OutputFormat = "json"
	// FormatTable outputs a styled key/value table
	FormatTable OutputFormat = "table"
)

// Report is the result of one `linkage run`.
type Report struct {
	RunID    string `json:"run_id" yaml:"run_id"`
	Input    string `json:"input" yaml:"input"`
	Strategy string `json:"strategy" yaml:"strategy"`

	linkage.Result `yaml:",inline"`
}

// writeReport writes r to outputFile, or to w when no file was given.
func writeReport(w io.Writer, r *Report, format OutputFormat) error {
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML, "":
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatTable:
		_, err := fmt.Fprintln(w, renderTable(r))
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

var (
	primary    = lipgloss.Color("#00ff9f")
	dim        = lipgloss.Color("#6e7681")
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(primary)
	labelStyle = lipgloss.NewStyle().Foreground(dim).Width(16)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primary).Padding(0, 1)
)

func renderTable(r *Report) string {
	snapshot := "-"
	if r.SnapshotTaken {
		snapshot = strconv.Itoa(r.Snapshot)
	}
	rows := [][2]string{
		{"input", r.Input},
		{"strategy", r.Strategy},
		{"points", strconv.Itoa(r.Points)},
		{"pairs", strconv.Itoa(r.Pairs)},
		{"steps", strconv.Itoa(r.Steps)},
		{"links", strconv.Itoa(r.Links)},
		{"clusters", strconv.Itoa(r.Clusters)},
		{fmt.Sprintf("top3 @ %d", r.CheckAt), snapshot},
		{"final top3", strconv.Itoa(r.FinalTop3)},
		{"last merge", strconv.FormatInt(r.LastMerge, 10)},
		{"span length", strconv.FormatFloat(r.SpanLength, 'f', 3, 64)},
	}

	lines := []string{titleStyle.Render("linkage " + r.RunID)}
	for _, row := range rows {
		lines = append(lines, labelStyle.Render(row[0])+row[1])
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
