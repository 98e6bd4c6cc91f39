package viz

// ChartSize clamps a desired chart width and derives a matching height.
func ChartSize(rawW int) (int, int) {
	w := rawW
	if w < 640 {
		w = 640
	}
	if w > 1400 {
		w = 1400
	}
	h := int(float32(w) * 0.55)
	if h < 360 {
		h = 360
	}
	if h > 760 {
		h = 760
	}
	return w, h
}

// BarHSize derives horizontal bar chart dimensions from the number of bars so
// long rankings stay readable.
func BarHSize(bars int) (int, int) {
	h := 90 + 26*bars
	if h < 300 {
		h = 300
	}
	if h > 860 {
		h = 860
	}
	return 960, h
}

// PieSize is the square canvas used for pie charts.
func PieSize() (int, int) { return 700, 700 }
