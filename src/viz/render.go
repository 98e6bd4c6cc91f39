// Package viz rasterizes charts for the viewer apps. Every renderer returns a
// ready image.Image; render failures fall back to a blank image and a stdout
// note so a UI action never dies inside the plotting layer.
package viz

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Bar is one labeled value in a bar, histogram or pie request.
type Bar struct {
	Label string
	Value float64
}

// Histogram renders vertical frequency bars, one per bin label.
func Histogram(title string, bars []Bar, w, h int) image.Image {
	return barV(title, bars, w, h, 45.0)
}

// BarV renders a vertical bar chart of ranked group values.
func BarV(title string, bars []Bar, w, h int) image.Image {
	return barV(title, bars, w, h, 45.0)
}

func barV(title string, bars []Bar, w, h int, labelRotation float64) image.Image {
	if len(bars) == 0 {
		return Blank(w, h)
	}
	values := make([]chart.Value, len(bars))
	for i, b := range bars {
		values[i] = chart.Value{Label: b.Label, Value: b.Value}
	}
	barWidth := (w - 120) / len(bars)
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth < 4 {
		barWidth = 4
	}
	ch := chart.BarChart{
		Title:      title,
		Background: chart.Style{Padding: chart.Box{Top: 32, Left: 16, Right: 16, Bottom: 48}},
		Width:      w,
		Height:     h,
		BarWidth:   barWidth,
		XAxis:      chart.Style{TextRotationDegrees: labelRotation},
		Bars:       values,
	}
	return rasterize(w, h, "bar", func(out io.Writer) error {
		return ch.Render(chart.PNG, out)
	})
}

// Line renders values against row position with dot markers.
func Line(title, yLabel string, values []float64, w, h int) image.Image {
	if len(values) == 0 {
		return Blank(w, h)
	}
	xs := make([]float64, len(values))
	for i := range values {
		xs[i] = float64(i + 1)
	}
	ys := values
	// go-chart needs a non-zero X span; pad single points like the row axis
	// always had two positions.
	if len(xs) == 1 {
		xs = []float64{xs[0], xs[0] + 1}
		ys = []float64{ys[0], ys[0]}
	}
	st := chart.Style{
		StrokeWidth: 2,
		StrokeColor: chart.ColorBlue,
		DotWidth:    3,
		DotColor:    chart.ColorBlue,
	}
	ch := chart.Chart{
		Title:      title,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 32}},
		Width:      w,
		Height:     h,
		XAxis:      chart.XAxis{Name: "Row Index"},
		YAxis:      chart.YAxis{Name: yLabel},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: yLabel, XValues: xs, YValues: ys, Style: st},
		},
	}
	return rasterize(w, h, "line", func(out io.Writer) error {
		return ch.Render(chart.PNG, out)
	})
}

// Pie renders labeled wedges with percentage labels.
func Pie(title string, slices []Bar, w, h int) image.Image {
	if len(slices) == 0 {
		return Blank(w, h)
	}
	total := 0.0
	for _, s := range slices {
		total += s.Value
	}
	values := make([]chart.Value, 0, len(slices))
	for _, s := range slices {
		if s.Value <= 0 {
			continue
		}
		label := s.Label
		if total > 0 {
			label = fmt.Sprintf("%s (%.1f%%)", s.Label, 100*s.Value/total)
		}
		values = append(values, chart.Value{Label: label, Value: s.Value})
	}
	if len(values) == 0 {
		return Blank(w, h)
	}
	ch := chart.PieChart{
		Title:  title,
		Width:  w,
		Height: h,
		Values: values,
	}
	return rasterize(w, h, "pie", func(out io.Writer) error {
		return ch.Render(chart.PNG, out)
	})
}

// rasterize runs a go-chart render into PNG and decodes it back to an image,
// falling back to a blank canvas on failure.
func rasterize(w, h int, kind string, render func(io.Writer) error) image.Image {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		fmt.Printf("[viz] %s chart render error: %v; showing blank fallback\n", kind, err)
		return Blank(w, h)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		fmt.Printf("[viz] %s chart decode error: %v; showing blank fallback\n", kind, err)
		return Blank(w, h)
	}
	return img
}

// Blank returns a neutral placeholder canvas.
func Blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := color.RGBA{R: 245, G: 245, B: 245, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, bg)
		}
	}
	return img
}

// BinLabel formats a bin range for axis and wedge labels.
func BinLabel(low, high float64) string {
	return fmt.Sprintf("%s-%s", FormatTick(low), FormatTick(high))
}

// FormatTick keeps numeric labels compact: integers above 100, growing
// precision below.
func FormatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
