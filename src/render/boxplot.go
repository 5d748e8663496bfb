package render

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/CoevolutionPlot/src/analysis"
)

const (
	meanMarkerSize  = 6
	flierMarkerSize = 6
	// space below the x axis for the rotated series names
	boxLabelRoom = 90
	boxLabelGap  = 14
)

// boxRange maps box positions 1..n onto the panel; the first series sits on the right when inverted.
func boxRange(n int, o Options) *chart.ContinuousRange {
	return &chart.ContinuousRange{Min: 0.5, Max: float64(n) + 0.5, Descending: o.InvertBoxAxis}
}

// boxChart builds the right panel: one notched box of final win rates per series.
func boxChart(data []analysis.SeriesData, o Options, width int) chart.Chart {
	n := len(data)
	// go-chart's raster renderer keeps the rotation of rotated tick labels in its transform, so the ticks stay
	// unlabeled and boxLabelsElement draws the series names
	xTicks := []chart.Tick{{Value: 0.5, Label: ""}}
	xGrid := make([]chart.GridLine, 0, n)
	for i := range data {
		xTicks = append(xTicks, chart.Tick{Value: float64(i + 1), Label: ""})
		xGrid = append(xGrid, chart.GridLine{Value: float64(i + 1)})
	}
	xTicks = append(xTicks, chart.Tick{Value: float64(n) + 0.5, Label: ""})
	yTicks := axisTicks(o.YMin, o.YMax, 9)
	grid := gridStyle(o)

	w := window{xmin: 0.5, xmax: float64(n) + 0.5, ymin: o.YMin, ymax: o.YMax}
	ch := chart.Chart{
		Width:      width,
		Height:     o.Height,
		Background: chart.Style{Padding: chart.Box{Top: 64, Left: 20, Right: 12, Bottom: boxLabelRoom}},
		XAxis: chart.XAxis{
			Range:          boxRange(n, o),
			Ticks:          xTicks,
			GridLines:      xGrid,
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		// primary y axis: go-chart draws it on the right
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: o.YMin, Max: o.YMax},
			Ticks:          yTicks,
			GridLines:      gridLines(yTicks),
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		Series: []chart.Series{anchorSeries(w, chart.YAxisPrimary)},
	}
	ch.Elements = []chart.Renderable{boxesElement(data, o), boxLabelsElement(data, o)}
	return ch
}

// boxesElement draws box, notch, median, whiskers, caps, fliers and mean of every series.
func boxesElement(data []analysis.SeriesData, o Options) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		n := len(data)
		if n == 0 {
			return
		}
		xr := boxRange(n, o)
		xr.Domain = cb.Width()
		yr := &chart.ContinuousRange{Min: o.YMin, Max: o.YMax, Domain: cb.Height()}
		toY := func(v float64) int {
			y := cb.Bottom - yr.Translate(v)
			if y < cb.Top {
				return cb.Top
			}
			if y > cb.Bottom {
				return cb.Bottom
			}
			return y
		}
		inY := func(v float64) bool { return v >= o.YMin && v <= o.YMax }
		slot := float64(cb.Width()) / float64(n)
		hw := int(slot * o.BoxWidth / 2)
		if hw < 2 {
			hw = 2
		}

		for i, sd := range data {
			st := sd.Stats
			cx := cb.Left + xr.Translate(float64(i+1))
			q1, q3, med := toY(st.Q1), toY(st.Q3), toY(st.Median)
			nlo, nhi := toY(st.NotchLo), toY(st.NotchHi)

			// whiskers (dashed) and caps
			r.ResetStyle()
			r.SetStrokeColor(o.BoxColor)
			r.SetStrokeWidth(1)
			r.SetStrokeDashArray([]float64{5, 3})
			r.MoveTo(cx, q1)
			r.LineTo(cx, toY(st.WhiskerLo))
			r.Stroke()
			r.MoveTo(cx, q3)
			r.LineTo(cx, toY(st.WhiskerHi))
			r.Stroke()

			r.ResetStyle()
			r.SetStrokeColor(o.CapColor)
			r.SetStrokeWidth(1)
			for _, v := range []float64{st.WhiskerLo, st.WhiskerHi} {
				y := toY(v)
				r.MoveTo(cx-hw/2, y)
				r.LineTo(cx+hw/2, y)
				r.Stroke()
			}

			// notched box outline
			r.ResetStyle()
			r.SetFillColor(drawing.ColorWhite)
			r.SetStrokeColor(o.BoxColor)
			r.SetStrokeWidth(1)
			r.MoveTo(cx-hw, q1)
			r.LineTo(cx+hw, q1)
			r.LineTo(cx+hw, nlo)
			r.LineTo(cx+hw/2, med)
			r.LineTo(cx+hw, nhi)
			r.LineTo(cx+hw, q3)
			r.LineTo(cx-hw, q3)
			r.LineTo(cx-hw, nhi)
			r.LineTo(cx-hw/2, med)
			r.LineTo(cx-hw, nlo)
			r.Close()
			r.FillStroke()

			r.ResetStyle()
			r.SetStrokeColor(o.MedianColor)
			r.SetStrokeWidth(1.5)
			r.MoveTo(cx-hw/2, med)
			r.LineTo(cx+hw/2, med)
			r.Stroke()

			for _, f := range st.Fliers {
				if inY(f) {
					drawPlus(r, cx, toY(f), flierMarkerSize, o.BoxColor)
				}
			}
			if inY(st.Mean) {
				drawMarker(r, MarkerCircle, cx, toY(st.Mean), meanMarkerSize, o.MeanColor, o.MeanColor, 1)
			}
		}
		r.ResetStyle()
	}
}

// boxLabelsElement writes the series names under their boxes. Rotated names end at the box position and run
// down to the left. The rotation is cleared after every name.
func boxLabelsElement(data []analysis.SeriesData, o Options) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		n := len(data)
		if n == 0 {
			return
		}
		xr := boxRange(n, o)
		xr.Domain = cb.Width()
		theta := chart.DegreesToRadians(o.TickRotation)
		top := cb.Bottom + boxLabelGap
		for i, sd := range data {
			setText(r, defaults, o.FontSize, drawing.ColorBlack)
			tb := r.MeasureText(sd.Series.Label)
			x := cb.Left + xr.Translate(float64(i+1))
			if o.TickRotation == 0 {
				r.Text(sd.Series.Label, x-tb.Width()/2, top+tb.Height())
				continue
			}
			sx := x - int(float64(tb.Width())*math.Cos(theta))
			sy := top + tb.Height()/2 + int(float64(tb.Width())*math.Sin(theta))
			r.SetTextRotation(-theta)
			r.Text(sd.Series.Label, sx, sy)
			r.ClearTextRotation()
		}
		r.ResetStyle()
	}
}
