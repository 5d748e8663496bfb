// Package types holds the small value types shared by the reader, the aggregators and the renderer.
package types

// Series is one experiment result file and the label it is plotted under.
type Series struct {
	File  string `mapstructure:"file" json:"file" yaml:"file" validate:"required"`
	Label string `mapstructure:"label" json:"label" yaml:"label" validate:"required"`
}

// DefaultSeries is the comparison table plotted when no other list is configured.
// Order is plotting order and selects the marker of each series.
func DefaultSeries() []Series {
	return []Series{
		{File: "rsel.csv", Label: "1-Evol-RS"},
		{File: "cel-rs.csv", Label: "1-Coev-RS"},
		{File: "2cel-rs.csv", Label: "2-Coev-RS"},
		{File: "cel.csv", Label: "1-Coev"},
		{File: "2cel.csv", Label: "2-Coev"},
	}
}

// Labels returns the display labels in series order.
func Labels(series []Series) []string {
	out := make([]string, len(series))
	for i, s := range series {
		out[i] = s.Label
	}
	return out
}
