// Package render draws the two-panel comparison figure: win-rate trends on the left and notched
// box plots of the final generation on the right.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/iafilius/CoevolutionPlot/src/analysis"
	"github.com/iafilius/CoevolutionPlot/src/logging"
)

// Panels returns the left (trend) and right (box) charts of the figure.
func Panels(data []analysis.SeriesData, o Options) (chart.Chart, chart.Chart) {
	lw, rw := o.panelWidths()
	return lineChart(data, o, lw), boxChart(data, o, rw)
}

// Render draws the figure for data into w.
func Render(w io.Writer, format Format, data []analysis.SeriesData, o Options) error {
	if len(data) == 0 {
		return errors.New("render: no series")
	}
	if err := o.validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	left, right := Panels(data, o)
	switch format {
	case FormatSVG:
		return composeSVG(w, o, left, right)
	case FormatPNG:
		return composePNG(w, o, left, right)
	default:
		return fmt.Errorf("render: unknown format %q", format)
	}
}

// SaveFile renders the figure and writes it to path, replacing any existing file.
// Nothing is written when rendering fails.
func SaveFile(path string, data []analysis.SeriesData, o Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Render(&buf, format, data, o); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	logging.Infof("[render] wrote %s (%s, %dx%d, %d bytes)", path, format, o.Width, o.Height, buf.Len())
	return nil
}

// composeSVG renders each panel as its own SVG document and nests them side by side in one outer document.
// Each nested element gets an explicit size so it is not stretched to the outer viewport.
func composeSVG(w io.Writer, o Options, panels ...chart.Chart) error {
	var out bytes.Buffer
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		o.Width, o.Height, o.Width, o.Height)
	fmt.Fprintf(&out, `<rect x="0" y="0" width="%d" height="%d" fill="#ffffff"/>`+"\n", o.Width, o.Height)
	x := 0
	for i, p := range panels {
		var buf bytes.Buffer
		if err := p.Render(chart.SVG, &buf); err != nil {
			return fmt.Errorf("render panel %d: %w", i, err)
		}
		body, err := svgBody(buf.Bytes())
		if err != nil {
			return fmt.Errorf("render panel %d: %w", i, err)
		}
		fmt.Fprintf(&out, `<svg x="%d" y="0" width="%d" height="%d" viewBox="0 0 %d %d">`, x, p.Width, p.Height, p.Width, p.Height)
		out.Write(body)
		out.WriteString("</svg>\n")
		x += p.Width
	}
	out.WriteString("</svg>\n")
	_, err := w.Write(out.Bytes())
	return err
}

// svgBody returns the content of the root svg element of doc, without its own start and end tags.
func svgBody(doc []byte) ([]byte, error) {
	start := bytes.Index(doc, []byte("<svg"))
	if start < 0 {
		return nil, errors.New("no svg element in output")
	}
	open := bytes.IndexByte(doc[start:], '>')
	end := bytes.LastIndex(doc, []byte("</svg>"))
	if open < 0 || end < start+open {
		return nil, errors.New("unterminated svg element in output")
	}
	return doc[start+open+1 : end], nil
}

// composePNG renders each panel to PNG and pastes them onto one white canvas.
func composePNG(w io.Writer, o Options, panels ...chart.Chart) error {
	canvas := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	x := 0
	for i, p := range panels {
		var buf bytes.Buffer
		if err := p.Render(chart.PNG, &buf); err != nil {
			return fmt.Errorf("render panel %d: %w", i, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			return fmt.Errorf("decode panel %d: %w", i, err)
		}
		b := img.Bounds()
		dst := image.Rect(x, 0, x+b.Dx(), b.Dy())
		draw.Draw(canvas, dst, img, b.Min, draw.Over)
		x += p.Width
	}
	return png.Encode(w, canvas)
}
