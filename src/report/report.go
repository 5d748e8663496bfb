// Package report summarizes aggregated series as a table, JSON, YAML or an XLSX workbook.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/iafilius/CoevolutionPlot/src/analysis"
)

// Row is the summary of one series.
type Row struct {
	Label string `json:"label" yaml:"label"`
	File  string `json:"file" yaml:"file"`
	Rows  int    `json:"rows" yaml:"rows"`
	// FinalGames and FinalWinRate are the last point of the trend line.
	FinalGames   float64           `json:"final_games" yaml:"final_games"`
	FinalWinRate float64           `json:"final_win_rate" yaml:"final_win_rate"`
	Box          analysis.BoxStats `json:"box" yaml:"box"`
}

// Summary is the document written by WriteJSON and WriteYAML.
type Summary struct {
	Series []Row `json:"series" yaml:"series"`
}

// Build turns aggregated series into summary rows, keeping their order.
func Build(data []analysis.SeriesData) []Row {
	out := make([]Row, 0, len(data))
	for _, sd := range data {
		r := Row{
			Label: sd.Series.Label,
			File:  sd.Series.File,
			Rows:  sd.Rows,
			Box:   sd.Stats,
		}
		if n := sd.Line.Len(); n > 0 {
			r.FinalGames = sd.Line.X[n-1]
			r.FinalWinRate = sd.Line.Y[n-1]
		}
		out = append(out, r)
	}
	return out
}

// WriteText prints an aligned table, one line per series.
func WriteText(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SERIES\tFILE\tROWS\tGAMES(x1000)\tWIN%\tN\tMEAN\tQ1\tMEDIAN\tQ3\tFLIERS")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f\t%.2f\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%d\n",
			r.Label, r.File, r.Rows, r.FinalGames, r.FinalWinRate,
			r.Box.N, r.Box.Mean, r.Box.Q1, r.Box.Median, r.Box.Q3, len(r.Box.Fliers))
	}
	return tw.Flush()
}

// WriteJSON writes the summary as indented JSON.
func WriteJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Summary{Series: rows})
}

// WriteYAML writes the summary as YAML.
func WriteYAML(w io.Writer, rows []Row) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Summary{Series: rows}); err != nil {
		return err
	}
	return enc.Close()
}

// Write dispatches on format: text, json or yaml.
func Write(w io.Writer, format string, rows []Row) error {
	switch format {
	case "", "text":
		return WriteText(w, rows)
	case "json":
		return WriteJSON(w, rows)
	case "yaml", "yml":
		return WriteYAML(w, rows)
	default:
		return fmt.Errorf("unknown summary format %q", format)
	}
}
