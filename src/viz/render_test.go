package viz

import (
	"image"
	"testing"
)

func checkBounds(t *testing.T, img image.Image, w, h int) {
	t.Helper()
	if img == nil {
		t.Fatal("expected an image, got nil")
	}
	b := img.Bounds()
	if b.Dx() != w || b.Dy() != h {
		t.Fatalf("got %dx%d, want %dx%d", b.Dx(), b.Dy(), w, h)
	}
}

func TestBarVDimensions(t *testing.T) {
	bars := []Bar{{Label: "North", Value: 10}, {Label: "South", Value: 4}}
	checkBounds(t, BarV("t", bars, 800, 500), 800, 500)
}

func TestHistogramDimensions(t *testing.T) {
	bars := []Bar{{Label: "0-5", Value: 3}, {Label: "5-10", Value: 1}}
	checkBounds(t, Histogram("t", bars, 700, 400), 700, 400)
}

func TestLineDimensions(t *testing.T) {
	checkBounds(t, Line("t", "Quantity", []float64{1, 2, 3}, 640, 400), 640, 400)
}

func TestLineSinglePoint(t *testing.T) {
	// A single value must still render; the X span is padded internally.
	checkBounds(t, Line("t", "Quantity", []float64{5}, 640, 400), 640, 400)
}

func TestPieDimensions(t *testing.T) {
	slices := []Bar{{Label: "A", Value: 3}, {Label: "B", Value: 1}}
	checkBounds(t, Pie("t", slices, 700, 700), 700, 700)
}

func TestPieSkipsNonPositive(t *testing.T) {
	// All-zero input degrades to the blank canvas rather than failing.
	checkBounds(t, Pie("t", []Bar{{Label: "A", Value: 0}}, 300, 300), 300, 300)
}

func TestEmptyInputsFallBackToBlank(t *testing.T) {
	checkBounds(t, BarV("t", nil, 320, 200), 320, 200)
	checkBounds(t, Line("t", "y", nil, 320, 200), 320, 200)
	checkBounds(t, Pie("t", nil, 320, 200), 320, 200)
	checkBounds(t, Blank(320, 200), 320, 200)
}

func TestFormatTick(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1234, "1234"},
		{150.6, "151"},
		{99.25, "99.2"},
		{12, "12.0"},
		{9.876, "9.88"},
		{-3.5, "-3.50"},
		{-250, "-250"},
	}
	for _, c := range cases {
		if got := FormatTick(c.in); got != c.want {
			t.Errorf("FormatTick(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBinLabel(t *testing.T) {
	if got := BinLabel(0, 12.5); got != "0-12.5" {
		t.Errorf("BinLabel(0, 12.5) = %q", got)
	}
}
