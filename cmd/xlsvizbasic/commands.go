package main

import (
	"fmt"
	"image"

	"github.com/Liauuu/excel-visualizer/src/dataset"
	"github.com/Liauuu/excel-visualizer/src/viz"
)

// Actions offered by the preview selector, in menu order.
const (
	actFindMax   = "Find Max"
	actFindMin   = "Find Min"
	actHistogram = "Histogram (vertical bars)"
	actBarH      = "Bar Chart (horizontal)"
	actLine      = "Line Chart"
	actPie       = "Pie Chart"
)

var actions = []string{actFindMax, actFindMin, actHistogram, actBarH, actLine, actPie}

const (
	histogramBins    = 20
	pieBins          = 5
	pieTopCategories = 10
	barTopValues     = 30
	barTopCategories = 20
)

// actionResult is what a command hands back to the UI layer: log lines, an
// optional chart image with its window title, and an optional informational
// notice (e.g. unsupported action).
type actionResult struct {
	lines  []string
	img    image.Image
	title  string
	notice string
}

// runAction validates and executes one preview request against the current
// snapshot. Expected failures (missing column, nothing numeric) come back as
// typed errors for the UI to surface as warnings.
func runAction(snap *dataset.Snapshot, column, action string) (actionResult, error) {
	if snap == nil || snap.Data == nil {
		return actionResult{}, dataset.ErrNoData
	}
	switch action {
	case actFindMax:
		return findExtreme(snap.Data, column, true)
	case actFindMin:
		return findExtreme(snap.Data, column, false)
	case actHistogram:
		return histogram(snap.Data, column)
	case actBarH:
		return barHorizontal(snap.Data, column)
	case actLine:
		return lineChart(snap.Data, column)
	case actPie:
		return pieChart(snap.Data, column)
	default:
		return actionResult{notice: fmt.Sprintf("%q is not implemented.", action)}, nil
	}
}

// findExtreme reports the max or min of a column: numeric comparison when the
// column is numeric, lexicographic over non-empty cells otherwise.
func findExtreme(d *dataset.Dataset, column string, wantMax bool) (actionResult, error) {
	label := "Min"
	if wantMax {
		label = "Max"
	}
	if d.IsNumeric(column) {
		values, _, err := d.NumericColumn(column)
		if err != nil {
			return actionResult{}, err
		}
		pick := dataset.ColumnMin
		if wantMax {
			pick = dataset.ColumnMax
		}
		v, err := pick(values)
		if err != nil {
			return actionResult{}, fmt.Errorf("unable to compute %s for %q: %w", label, column, err)
		}
		return actionResult{lines: []string{fmt.Sprintf("[%s] %s = %s", label, column, viz.FormatTick(v))}}, nil
	}
	cells, err := d.Column(column)
	if err != nil {
		return actionResult{}, err
	}
	best := ""
	found := false
	for _, c := range cells {
		if c == "" {
			continue
		}
		if !found || (wantMax && c > best) || (!wantMax && c < best) {
			best = c
			found = true
		}
	}
	if !found {
		return actionResult{}, fmt.Errorf("unable to compute %s for %q: %w", label, column, dataset.ErrNoData)
	}
	return actionResult{lines: []string{fmt.Sprintf("[%s] %s = %s", label, column, best)}}, nil
}

func histogram(d *dataset.Dataset, column string) (actionResult, error) {
	values, lines, err := coercedValues(d, column)
	if err != nil {
		return actionResult{}, err
	}
	bins := dataset.Bins(values, histogramBins)
	bars := make([]viz.Bar, len(bins))
	for i, b := range bins {
		bars[i] = viz.Bar{Label: viz.BinLabel(b.Low, b.High), Value: float64(b.Count)}
	}
	w, h := viz.ChartSize(960)
	title := fmt.Sprintf("Histogram of %s", column)
	return actionResult{
		lines: append(lines, "Histogram shown."),
		img:   viz.Histogram(title, bars, w, h),
		title: title,
	}, nil
}

// barHorizontal ranks either the largest raw values (numeric column, labeled
// by row) or the most frequent categories.
func barHorizontal(d *dataset.Dataset, column string) (actionResult, error) {
	cells, err := d.Column(column)
	if err != nil {
		return actionResult{}, err
	}
	var (
		bars  []viz.Bar
		title string
	)
	if d.IsNumeric(column) {
		top := dataset.TopN(rowValueGroups(cells), barTopValues)
		bars = groupsToBars(top)
		title = fmt.Sprintf("Top %d Largest Values in %s", len(bars), column)
	} else {
		counts := dropEmpty(dataset.GroupCount(cells))
		top := dataset.TopN(counts, barTopCategories)
		bars = groupsToBars(top)
		title = fmt.Sprintf("Top %d Categories in %s", len(bars), column)
	}
	if len(bars) == 0 {
		return actionResult{}, dataset.ErrNoData
	}
	w, h := viz.BarHSize(len(bars))
	return actionResult{
		lines: []string{"Horizontal bar chart shown."},
		img:   viz.BarH(title, bars, w, h),
		title: title,
	}, nil
}

func lineChart(d *dataset.Dataset, column string) (actionResult, error) {
	values, lines, err := coercedValues(d, column)
	if err != nil {
		return actionResult{}, err
	}
	w, h := viz.ChartSize(960)
	title := fmt.Sprintf("Line Chart of %s", column)
	return actionResult{
		lines: append(lines, "Line chart shown."),
		img:   viz.Line(title, column, values, w, h),
		title: title,
	}, nil
}

// pieChart bins numeric columns into five equal-width ranges and caps
// categorical columns at the ten most frequent values.
func pieChart(d *dataset.Dataset, column string) (actionResult, error) {
	var slices []viz.Bar
	if d.IsNumeric(column) {
		values, _, err := d.NumericColumn(column)
		if err != nil {
			return actionResult{}, err
		}
		if len(values) == 0 {
			return actionResult{}, dataset.ErrNoNumeric
		}
		for _, b := range dataset.Bins(values, pieBins) {
			slices = append(slices, viz.Bar{Label: viz.BinLabel(b.Low, b.High), Value: float64(b.Count)})
		}
	} else {
		cells, err := d.Column(column)
		if err != nil {
			return actionResult{}, err
		}
		top := dataset.TopN(dropEmpty(dataset.GroupCount(cells)), pieTopCategories)
		if len(top) == 0 {
			return actionResult{}, dataset.ErrNoData
		}
		slices = groupsToBars(top)
	}
	w, h := viz.PieSize()
	title := fmt.Sprintf("Pie Chart of %s", column)
	return actionResult{
		lines: []string{"Pie chart shown."},
		img:   viz.Pie(title, slices, w, h),
		title: title,
	}, nil
}

// coercedValues parses a column to numbers, logging a coercion note for
// non-numeric columns and an info line for dropped cells.
func coercedValues(d *dataset.Dataset, column string) ([]float64, []string, error) {
	var lines []string
	if !d.IsNumeric(column) {
		lines = append(lines, fmt.Sprintf("%q is not numeric. Converting to numeric where possible.", column))
	}
	values, dropped, err := d.NumericColumn(column)
	if err != nil {
		return nil, nil, err
	}
	if dropped > 0 {
		lines = append(lines, fmt.Sprintf("Dropped %d unconvertible cell(s) from %q.", dropped, column))
	}
	if len(values) == 0 {
		return nil, nil, dataset.ErrNoNumeric
	}
	return values, lines, nil
}

// rowValueGroups turns each parseable cell into a group labeled by its data
// row number so raw values can be ranked like categories.
func rowValueGroups(cells []string) []dataset.Group {
	keys := make([]string, 0, len(cells))
	vals := make([]string, 0, len(cells))
	for i, c := range cells {
		if c == "" {
			continue
		}
		keys = append(keys, fmt.Sprintf("Row %d", i+1))
		vals = append(vals, c)
	}
	groups := dataset.GroupSum(keys, vals)
	out := groups[:0:0]
	for _, g := range groups {
		if g.Valid {
			out = append(out, g)
		}
	}
	return out
}

func dropEmpty(groups []dataset.Group) []dataset.Group {
	out := groups[:0:0]
	for _, g := range groups {
		if g.Key != "" {
			out = append(out, g)
		}
	}
	return out
}

func groupsToBars(groups []dataset.Group) []viz.Bar {
	bars := make([]viz.Bar, len(groups))
	for i, g := range groups {
		bars[i] = viz.Bar{Label: g.Key, Value: g.Value}
	}
	return bars
}
