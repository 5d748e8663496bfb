package render

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Marker is the symbol drawn on every n-th point of a trend line.
type Marker int

const (
	MarkerCircle Marker = iota
	MarkerTriangle
	MarkerSquare
	MarkerThinDiamond
	MarkerDiamond
)

var markerCycle = []Marker{MarkerCircle, MarkerTriangle, MarkerSquare, MarkerThinDiamond, MarkerDiamond}

func (m Marker) String() string {
	switch m {
	case MarkerCircle:
		return "circle"
	case MarkerTriangle:
		return "triangle"
	case MarkerSquare:
		return "square"
	case MarkerThinDiamond:
		return "thin_diamond"
	case MarkerDiamond:
		return "diamond"
	}
	return "unknown"
}

// MarkerFor returns the marker of the i-th series; the cycle repeats after five series.
func MarkerFor(i int) Marker {
	return markerCycle[i%len(markerCycle)]
}

// MarkIndices returns the indices 0, every, 2*every, ... below n.
func MarkIndices(n, every int) []int {
	if n <= 0 || every < 1 {
		return nil
	}
	out := make([]int, 0, (n+every-1)/every)
	for i := 0; i < n; i += every {
		out = append(out, i)
	}
	return out
}

// vertices of the polygon markers, unit half-size, y grows downwards
var markerShapes = map[Marker][][2]float64{
	MarkerTriangle:    {{0, -1}, {1, 0.8}, {-1, 0.8}},
	MarkerSquare:      {{-0.8, -0.8}, {0.8, -0.8}, {0.8, 0.8}, {-0.8, 0.8}},
	MarkerThinDiamond: {{0, -1}, {0.6, 0}, {0, 1}, {-0.6, 0}},
	MarkerDiamond:     {{0, -1}, {1, 0}, {0, 1}, {-1, 0}},
}

// drawMarker draws m centered on (x, y) with the given size in pixels.
func drawMarker(r chart.Renderer, m Marker, x, y int, size float64, fill, edge drawing.Color, edgeWidth float64) {
	r.ResetStyle()
	defer r.ResetStyle()
	r.SetFillColor(fill)
	r.SetStrokeColor(edge)
	r.SetStrokeWidth(edgeWidth)
	h := size / 2
	if m == MarkerCircle {
		r.Circle(h, x, y)
		r.FillStroke()
		return
	}
	pts := markerShapes[m]
	for i, p := range pts {
		px := x + int(p[0]*h)
		py := y + int(p[1]*h)
		if i == 0 {
			r.MoveTo(px, py)
			continue
		}
		r.LineTo(px, py)
	}
	r.Close()
	r.FillStroke()
}

// drawPlus draws a "+" flier symbol.
func drawPlus(r chart.Renderer, x, y int, size float64, col drawing.Color) {
	r.ResetStyle()
	defer r.ResetStyle()
	h := int(size / 2)
	r.SetStrokeColor(col)
	r.SetStrokeWidth(1)
	r.MoveTo(x-h, y)
	r.LineTo(x+h, y)
	r.Stroke()
	r.MoveTo(x, y-h)
	r.LineTo(x, y+h)
	r.Stroke()
}
