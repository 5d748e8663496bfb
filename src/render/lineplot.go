package render

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/CoevolutionPlot/src/analysis"
)

const (
	legendSample = 26
	legendPad    = 6
	legendMargin = 8
	topTickLen   = 4
)

func gridStyle(o Options) chart.Style {
	return chart.Style{
		StrokeColor:     o.GridColor,
		StrokeWidth:     o.GridWidth,
		StrokeDashArray: o.GridDash,
	}
}

// anchorSeries spans the panel window without being visible, so the chart always has a series to lay out.
func anchorSeries(w window, axis chart.YAxisType) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		XValues: []float64{w.xmin, w.xmax},
		YValues: []float64{w.ymin, w.ymin},
		YAxis:   axis,
		Style: chart.Style{
			StrokeColor: drawing.ColorTransparent,
			StrokeWidth: 1,
		},
	}
}

// lineChart builds the left panel: win-rate trend per series over games played.
func lineChart(data []analysis.SeriesData, o Options, width int) chart.Chart {
	w := window{xmin: o.XMin, xmax: o.XMax, ymin: o.YMin, ymax: o.YMax}
	xTicks := axisTicks(o.XMin, o.XMax, 6)
	yTicks := axisTicks(o.YMin, o.YMax, 9)
	grid := gridStyle(o)

	series := []chart.Series{anchorSeries(w, chart.YAxisSecondary)}
	for i, sd := range data {
		st := chart.Style{StrokeColor: o.color(i), StrokeWidth: o.LineWidth}
		for _, run := range clipPolyline(sd.Line.X, sd.Line.Y, w) {
			xs := make([]float64, len(run))
			ys := make([]float64, len(run))
			for j, p := range run {
				xs[j], ys[j] = p.x, p.y
			}
			series = append(series, chart.ContinuousSeries{
				Name:    sd.Series.Label,
				XValues: xs,
				YValues: ys,
				YAxis:   chart.YAxisSecondary,
				Style:   st,
			})
		}
	}

	ch := chart.Chart{
		Width:      width,
		Height:     o.Height,
		Background: chart.Style{Padding: chart.Box{Top: 64, Left: 12, Right: 20, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           o.XLabel,
			NameStyle:      chart.Style{FontSize: o.FontSize},
			Range:          &chart.ContinuousRange{Min: o.XMin, Max: o.XMax},
			Ticks:          xTicks,
			GridLines:      gridLines(xTicks),
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		// series are mapped to the secondary axis, which go-chart draws on the left
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: o.YMin, Max: o.YMax},
			Ticks: yTicks,
		},
		YAxisSecondary: chart.YAxis{
			Name:           o.YLabel,
			NameStyle:      chart.Style{FontSize: o.FontSize},
			AxisType:       chart.YAxisSecondary,
			Range:          &chart.ContinuousRange{Min: o.YMin, Max: o.YMax},
			Ticks:          yTicks,
			GridLines:      gridLines(yTicks),
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{
		markersElement(data, o),
		topAxisElement(o),
		legendElement(data, o),
	}
	return ch
}

// markersElement draws the series marker on every MarkEvery-th point that lies inside the window.
func markersElement(data []analysis.SeriesData, o Options) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		w := window{xmin: o.XMin, xmax: o.XMax, ymin: o.YMin, ymax: o.YMax}
		xr := &chart.ContinuousRange{Min: o.XMin, Max: o.XMax, Domain: cb.Width()}
		yr := &chart.ContinuousRange{Min: o.YMin, Max: o.YMax, Domain: cb.Height()}
		for i, sd := range data {
			m := MarkerFor(i)
			for _, idx := range MarkIndices(sd.Line.Len(), o.MarkEvery) {
				x, y := sd.Line.X[idx], sd.Line.Y[idx]
				if !w.contains(x, y) {
					continue
				}
				px := cb.Left + xr.Translate(x)
				py := cb.Bottom - yr.Translate(y)
				drawMarker(r, m, px, py, o.MarkerSize, o.color(i), o.MarkerEdge, o.MarkerEdgeWidth)
			}
		}
	}
}

// topAxisElement draws the generation axis along the top edge. It shares only the figure space with the
// games axis; its range runs from TopFrom on the left to TopTo on the right.
func topAxisElement(o Options) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		lo, hi := o.TopTo, o.TopFrom
		if lo > hi {
			lo, hi = hi, lo
		}
		tr := &chart.ContinuousRange{Min: lo, Max: hi, Descending: o.TopFrom > o.TopTo, Domain: cb.Width()}

		r.ResetStyle()
		r.SetStrokeColor(drawing.ColorBlack)
		r.SetStrokeWidth(1)
		r.MoveTo(cb.Left, cb.Top)
		r.LineTo(cb.Right, cb.Top)
		r.Stroke()

		labelTop := cb.Top
		for _, t := range niceTicks(lo, hi, 5) {
			x := cb.Left + tr.Translate(t.Value)
			r.ResetStyle()
			r.SetStrokeColor(drawing.ColorBlack)
			r.SetStrokeWidth(1)
			r.MoveTo(x, cb.Top)
			r.LineTo(x, cb.Top-topTickLen)
			r.Stroke()

			setText(r, defaults, o.FontSize, drawing.ColorBlack)
			tb := r.MeasureText(t.Label)
			y := cb.Top - topTickLen - 3
			r.Text(t.Label, x-tb.Width()/2, y)
			if top := y - tb.Height(); top < labelTop {
				labelTop = top
			}
		}
		if o.TopLabel != "" {
			setText(r, defaults, o.FontSize, drawing.ColorBlack)
			tb := r.MeasureText(o.TopLabel)
			r.Text(o.TopLabel, cb.Left+(cb.Width()-tb.Width())/2, labelTop-6)
		}
		r.ResetStyle()
	}
}

// legendElement draws the series legend in the lower right corner of the line panel.
func legendElement(data []analysis.SeriesData, o Options) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		if len(data) == 0 {
			return
		}
		setText(r, defaults, o.LegendFontSize, drawing.ColorBlack)
		maxW, textH := 0, 0
		for _, sd := range data {
			tb := r.MeasureText(sd.Series.Label)
			if tb.Width() > maxW {
				maxW = tb.Width()
			}
			if tb.Height() > textH {
				textH = tb.Height()
			}
		}
		rowH := textH + 6
		if rowH < int(o.MarkerSize)+4 {
			rowH = int(o.MarkerSize) + 4
		}
		boxW := legendPad*3 + legendSample + maxW
		boxH := legendPad*2 + rowH*len(data)
		left := cb.Right - boxW - legendMargin
		top := cb.Bottom - boxH - legendMargin

		r.ResetStyle()
		r.SetFillColor(drawing.ColorWhite.WithAlpha(220))
		r.SetStrokeColor(drawing.ColorFromHex("cccccc"))
		r.SetStrokeWidth(0.8)
		r.MoveTo(left, top)
		r.LineTo(left+boxW, top)
		r.LineTo(left+boxW, top+boxH)
		r.LineTo(left, top+boxH)
		r.Close()
		r.FillStroke()

		for i, sd := range data {
			y := top + legendPad + i*rowH + rowH/2
			x0 := left + legendPad
			r.ResetStyle()
			r.SetStrokeColor(o.color(i))
			r.SetStrokeWidth(o.LineWidth)
			r.MoveTo(x0, y)
			r.LineTo(x0+legendSample, y)
			r.Stroke()
			drawMarker(r, MarkerFor(i), x0+legendSample/2, y, o.MarkerSize, o.color(i), o.MarkerEdge, o.MarkerEdgeWidth)

			setText(r, defaults, o.LegendFontSize, drawing.ColorBlack)
			r.Text(sd.Series.Label, x0+legendSample+legendPad, y+textH/2-1)
		}
		r.ResetStyle()
	}
}

func setText(r chart.Renderer, defaults chart.Style, size float64, col drawing.Color) {
	r.ResetStyle()
	r.ClearTextRotation()
	r.SetFont(defaults.GetFont())
	r.SetFontSize(size)
	r.SetFontColor(col)
}
