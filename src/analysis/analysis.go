// Package analysis turns parsed result tables into the numbers that get plotted:
// a win-rate trend per series and the final-generation win-rate distribution.
package analysis

import (
	"fmt"

	"github.com/iafilius/CoevolutionPlot/src/results"
	"github.com/iafilius/CoevolutionPlot/src/types"
)

const (
	// GamesScale converts the games-played column into thousands of games.
	GamesScale = 1000.0
	// PercentScale converts win-rate fractions into percent.
	PercentScale = 100.0
)

// LineData is the (x, y) sequence of the trend plot, in file row order.
type LineData struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Len returns the number of points.
func (l LineData) Len() int { return len(l.X) }

// SeriesData bundles everything derived from one result file.
type SeriesData struct {
	Series types.Series
	Path   string
	Rows   int
	Line   LineData
	Box    []float64
	Stats  BoxStats
}

// LineSeries computes x = games/1000 and y = mean(win rates)*100 for every data row.
func LineSeries(t *results.Table) (LineData, error) {
	if t.Len() == 0 {
		return LineData{}, fmt.Errorf("%s: %w", t.Path, results.ErrEmptyInput)
	}
	out := LineData{X: make([]float64, 0, t.Len()), Y: make([]float64, 0, t.Len())}
	for _, r := range t.Rows {
		if len(r.Values) < 1 {
			return LineData{}, tooFewFields(t.Path, r)
		}
		m, err := mean(r.Values[1:])
		if err != nil {
			return LineData{}, fmt.Errorf("%s:%d: %w", t.Path, r.Line, err)
		}
		out.X = append(out.X, r.Values[0]/GamesScale)
		out.Y = append(out.Y, m*PercentScale)
	}
	return out, nil
}

// BoxSeries returns the win rates of the last data row scaled to percent. Earlier rows are ignored.
func BoxSeries(t *results.Table) ([]float64, error) {
	last, ok := t.Last()
	if !ok {
		return nil, fmt.Errorf("%s: %w", t.Path, results.ErrEmptyInput)
	}
	if len(last.Values) < 1 {
		return nil, tooFewFields(t.Path, last)
	}
	trailing := last.Values[1:]
	if len(trailing) == 0 {
		return nil, fmt.Errorf("%s:%d: no win-rate values in final row: %w", t.Path, last.Line, results.ErrComputation)
	}
	out := make([]float64, len(trailing))
	for i, v := range trailing {
		out[i] = v * PercentScale
	}
	return out, nil
}

// LoadLineSeries reads path and returns its line data.
func LoadLineSeries(path string) (LineData, error) {
	t, err := results.ReadTable(path)
	if err != nil {
		return LineData{}, err
	}
	return LineSeries(t)
}

// LoadBoxSeries reads path and returns its box data.
func LoadBoxSeries(path string) ([]float64, error) {
	t, err := results.ReadTable(path)
	if err != nil {
		return nil, err
	}
	return BoxSeries(t)
}

// Analyze reads one series file and derives line data, box data and box statistics from a single read.
func Analyze(s types.Series, path string) (SeriesData, error) {
	t, err := results.ReadTable(path)
	if err != nil {
		return SeriesData{}, fmt.Errorf("series %s: %w", s.Label, err)
	}
	line, err := LineSeries(t)
	if err != nil {
		return SeriesData{}, fmt.Errorf("series %s: line data: %w", s.Label, err)
	}
	box, err := BoxSeries(t)
	if err != nil {
		return SeriesData{}, fmt.Errorf("series %s: box data: %w", s.Label, err)
	}
	st, err := ComputeBoxStats(box)
	if err != nil {
		return SeriesData{}, fmt.Errorf("series %s: box stats: %w", s.Label, err)
	}
	return SeriesData{Series: s, Path: path, Rows: t.Len(), Line: line, Box: box, Stats: st}, nil
}

// AnalyzeAll runs Analyze for every series in order, one file at a time. The first error stops the run.
func AnalyzeAll(series []types.Series, paths []string) ([]SeriesData, error) {
	if len(series) != len(paths) {
		return nil, fmt.Errorf("analysis: %d series but %d paths", len(series), len(paths))
	}
	out := make([]SeriesData, 0, len(series))
	for i, s := range series {
		sd, err := Analyze(s, paths[i])
		if err != nil {
			return nil, err
		}
		out = append(out, sd)
	}
	return out, nil
}

func mean(vs []float64) (float64, error) {
	if len(vs) == 0 {
		return 0, fmt.Errorf("mean of no values: %w", results.ErrComputation)
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs)), nil
}

func tooFewFields(path string, r results.Row) error {
	return &results.ParseError{Path: path, Line: r.Line, Column: -1, Reason: fmt.Sprintf("expected at least 2 fields, got %d", len(r.Values)+1)}
}
