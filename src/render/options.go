package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DefaultOutputFile is written to the working directory when no other output is configured.
const DefaultOutputFile = "5_star_plot.svg"

// Format selects the document type of the rendered figure.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// FormatFromPath derives the output format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return FormatSVG, nil
	case ".png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("unsupported output extension %q (want .svg or .png)", filepath.Ext(path))
	}
}

// Options carries every cosmetic setting of the comparison figure.
type Options struct {
	Width  int
	Height int

	// left panel
	XLabel    string
	YLabel    string
	TopLabel  string
	XMin      float64
	XMax      float64
	YMin      float64
	YMax      float64
	TopFrom   float64
	TopTo     float64
	MarkEvery int
	LineWidth float64

	MarkerSize      float64
	MarkerEdge      drawing.Color
	MarkerEdgeWidth float64
	Colors          []drawing.Color

	GridColor drawing.Color
	GridWidth float64
	GridDash  []float64

	FontSize       float64
	LegendFontSize float64

	// right panel
	BoxWidth      float64 // fraction of the slot given to one box
	BoxColor      drawing.Color
	MedianColor   drawing.Color
	MeanColor     drawing.Color
	CapColor      drawing.Color
	InvertBoxAxis bool
	TickRotation  float64
}

// DefaultOptions returns the settings of the published comparison figure.
func DefaultOptions() Options {
	return Options{
		Width:           1000,
		Height:          1000,
		XLabel:          "Rozegranych gier (x1000)",
		YLabel:          "Odsetek wygranych gier [%]",
		TopLabel:        "Pokolenie",
		XMin:            0,
		XMax:            500,
		YMin:            60,
		YMax:            100,
		TopFrom:         200,
		TopTo:           0,
		MarkEvery:       20,
		LineWidth:       1.5,
		MarkerSize:      7,
		MarkerEdge:      drawing.ColorBlack,
		MarkerEdgeWidth: 0.5,
		Colors: []drawing.Color{
			drawing.ColorFromHex("1f77b4"),
			drawing.ColorFromHex("ff7f0e"),
			drawing.ColorFromHex("2ca02c"),
			drawing.ColorFromHex("d62728"),
			drawing.ColorFromHex("9467bd"),
		},
		GridColor:      drawing.ColorBlack,
		GridWidth:      0.5,
		GridDash:       []float64{1, 2},
		FontSize:       10,
		LegendFontSize: 9,
		BoxWidth:       0.5,
		BoxColor:       drawing.ColorFromHex("0000ff"),
		MedianColor:    drawing.ColorFromHex("ff0000"),
		MeanColor:      drawing.ColorFromHex("0000ff"),
		CapColor:       drawing.ColorBlack,
		InvertBoxAxis:  true,
		TickRotation:   45,
	}
}

func (o Options) color(i int) drawing.Color {
	if len(o.Colors) == 0 {
		return drawing.ColorBlack
	}
	return o.Colors[i%len(o.Colors)]
}

// panelWidths splits the figure width between the line panel and the box panel.
func (o Options) panelWidths() (int, int) {
	left := o.Width / 2
	return left, o.Width - left
}

func (o Options) validate() error {
	if o.Width < 200 || o.Height < 200 {
		return fmt.Errorf("figure too small: %dx%d", o.Width, o.Height)
	}
	if o.XMax <= o.XMin || o.YMax <= o.YMin || o.TopFrom == o.TopTo {
		return fmt.Errorf("empty axis range")
	}
	if o.MarkEvery < 1 {
		return fmt.Errorf("mark interval must be positive, got %d", o.MarkEvery)
	}
	return nil
}
