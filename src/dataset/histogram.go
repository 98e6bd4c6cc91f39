package dataset

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Bin is one contiguous value range and the number of values falling in it.
// Intervals are right-closed: a value equal to a bin's upper bound counts in
// that bin, and the first bin also includes the minimum.
type Bin struct {
	Low   float64
	High  float64
	Count int
}

// Bins partitions values into n contiguous equal-width ranges spanning
// min..max. A degenerate range (all values equal) still yields n bins with
// everything in the first. Empty input returns nil.
func Bins(values []float64, n int) []Bin {
	if len(values) == 0 || n <= 0 {
		return nil
	}
	min := floats.Min(values)
	max := floats.Max(values)
	width := (max - min) / float64(n)

	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Low = min + float64(i)*width
		bins[i].High = min + float64(i+1)*width
	}
	bins[n-1].High = max

	for _, v := range values {
		ix := 0
		if width > 0 {
			ix = int(math.Ceil((v-min)/width)) - 1
			if ix < 0 {
				ix = 0
			}
			if ix >= n {
				ix = n - 1
			}
		}
		bins[ix].Count++
	}
	return bins
}
