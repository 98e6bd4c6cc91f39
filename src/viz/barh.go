package viz

import (
	"image"
	"image/color"
	"image/draw"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// BarH draws a horizontal bar chart onto a raw RGBA canvas: go-chart only
// renders vertical bars, so labels, axis line and bars are drawn directly.
// Bars are drawn top-down in the order given (largest first for ranked data)
// with the group label left of each bar and the value at its end.
func BarH(title string, bars []Bar, w, h int) image.Image {
	if len(bars) == 0 {
		return Blank(w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	measure := func(s string) int {
		d := &font.Drawer{Face: face}
		return d.MeasureString(s).Ceil()
	}

	// label gutter sized by the widest label
	gutter := 0
	for _, b := range bars {
		if lw := measure(b.Label); lw > gutter {
			gutter = lw
		}
	}
	gutter += 16
	if gutter > w/2 {
		gutter = w / 2
	}

	const topPad, bottomPad, rightPad = 34, 12, 70
	plotX := gutter
	plotW := w - plotX - rightPad
	plotH := h - topPad - bottomPad
	if plotW < 10 || plotH < 10 {
		return Blank(w, h)
	}

	// value span; keep zero inside so negative sums draw leftward
	minV, maxV := 0.0, 0.0
	for _, b := range bars {
		if b.Value < minV {
			minV = b.Value
		}
		if b.Value > maxV {
			maxV = b.Value
		}
	}
	span := maxV - minV
	if span <= 0 {
		span = 1
	}
	xFor := func(v float64) int {
		return plotX + int((v-minV)/span*float64(plotW))
	}

	n := len(bars)
	slot := plotH / n
	barTh := slot * 7 / 10
	if barTh < 4 {
		barTh = 4
	}
	if barTh > 26 {
		barTh = 26
	}

	barCol := rgba(chart.ColorBlue)
	axisCol := color.RGBA{R: 70, G: 70, B: 70, A: 255}
	textCol := image.NewUniform(color.RGBA{R: 30, G: 30, B: 30, A: 255})

	// title
	drawString(img, face, textCol, (w-measure(title))/2, 20, title)

	zeroX := xFor(0)
	for i, b := range bars {
		yTop := topPad + i*slot + (slot-barTh)/2
		x0, x1 := zeroX, xFor(b.Value)
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		if x1 == x0 {
			x1 = x0 + 1
		}
		draw.Draw(img, image.Rect(x0, yTop, x1, yTop+barTh), image.NewUniform(barCol), image.Point{}, draw.Src)

		// group label, right-aligned in the gutter
		baseline := yTop + barTh/2 + face.Metrics().Ascent.Ceil()/2
		lw := measure(b.Label)
		lx := plotX - 8 - lw
		if lx < 2 {
			lx = 2
		}
		drawString(img, face, textCol, lx, baseline, b.Label)

		// value at the end of the bar
		vs := FormatTick(b.Value)
		vx := x1 + 5
		if b.Value < 0 {
			vx = x0 - 5 - measure(vs)
		}
		drawString(img, face, textCol, vx, baseline, vs)
	}

	// baseline axis at the zero line
	draw.Draw(img, image.Rect(zeroX, topPad, zeroX+1, topPad+plotH), image.NewUniform(axisCol), image.Point{}, draw.Src)

	return img
}

func drawString(dst *image.RGBA, face font.Face, src image.Image, x, y int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func rgba(c drawing.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
