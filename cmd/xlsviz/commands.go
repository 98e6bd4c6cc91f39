package main

import (
	"fmt"
	"image"
	"strings"

	"github.com/Liauuu/excel-visualizer/src/dataset"
	"github.com/Liauuu/excel-visualizer/src/viz"
)

// Chart kinds offered by the selector, in menu order.
const (
	kindPie  = "Pie Chart (percent)"
	kindBarV = "Bar Chart (vertical)"
	kindBarH = "Bar Chart (horizontal)"
	kindLine = "Line Chart (single numeric column)"
)

var chartKinds = []string{kindPie, kindBarV, kindBarH, kindLine}

// logicalFields is the expected sales schema. Every load resolves these
// against whatever headers the file actually has; absences are tolerated
// until a feature needs the column.
var logicalFields = []string{
	"Date", "Region", "Product", "Quantity", "UnitPrice",
	"StoreLocation", "CustomerType", "Discount", "Salesperson",
	"TotalPrice", "PaymentMethod", "Promotion", "Returned",
}

// pieCandidates are the logical columns a percent pie may target.
var pieCandidates = []string{"Region", "Product", "StoreLocation", "CustomerType", "PaymentMethod"}

// barPair is one of the four allowed X,Y combinations for bar charts.
type barPair struct {
	X, Y string
}

var barPairs = []barPair{
	{"Region", "Quantity"},
	{"Region", "TotalPrice"},
	{"Product", "Quantity"},
	{"Product", "TotalPrice"},
}

func pairLabel(p barPair) string { return p.X + "  →  " + p.Y }

// metric pairs a grouping column with the value column its SUM/MAX/MIN
// buttons aggregate.
type metric struct {
	label      string
	groupField string
	valueField string
}

var metrics = []metric{
	{"Salesperson – TotalPrice (SUM / MAX / MIN)", "Salesperson", "TotalPrice"},
	{"StoreLocation – Returned (SUM / MAX / MIN)", "StoreLocation", "Returned"},
}

const (
	barTopGroups = 30
	sumTopGroups = 20
	logCapacity  = 120
)

// actionResult is what a command hands back to the UI layer: log lines, an
// optional chart image with its window title, and an optional notice.
type actionResult struct {
	lines  []string
	img    image.Image
	title  string
	notice string
}

// drawChart validates and renders one chart request against the snapshot.
func drawChart(snap *dataset.Snapshot, kind, pieColumn string, pairIndex int, lineColumn string) (actionResult, error) {
	if snap == nil || snap.Data == nil {
		return actionResult{}, dataset.ErrNoData
	}
	switch kind {
	case kindPie:
		return drawPie(snap.Data, pieColumn)
	case kindBarV, kindBarH:
		return drawBar(snap, kind, pairIndex)
	case kindLine:
		return drawLine(snap.Data, lineColumn)
	default:
		return actionResult{notice: fmt.Sprintf("%q is not implemented yet.", kind)}, nil
	}
}

// drawPie charts category shares over every category in the column; blank
// cells are kept as their own slice.
func drawPie(d *dataset.Dataset, column string) (actionResult, error) {
	cells, err := d.Column(column)
	if err != nil {
		return actionResult{}, err
	}
	groups := dataset.GroupCount(cells)
	slices := make([]viz.Bar, 0, len(groups))
	for _, g := range groups {
		label := g.Key
		if label == "" {
			label = "(blank)"
		}
		slices = append(slices, viz.Bar{Label: label, Value: g.Value})
	}
	if len(slices) == 0 {
		return actionResult{}, dataset.ErrNoData
	}
	w, h := viz.PieSize()
	title := fmt.Sprintf("Pie – %s (%%)", column)
	return actionResult{
		lines: []string{"Pie chart shown."},
		img:   viz.Pie(title, slices, w, h),
		title: title,
	}, nil
}

// drawBar aggregates the fixed pair: null-safe group sums when the value
// column is numeric, group counts otherwise, ranked descending and capped.
func drawBar(snap *dataset.Snapshot, kind string, pairIndex int) (actionResult, error) {
	if pairIndex < 0 || pairIndex >= len(barPairs) {
		return actionResult{}, fmt.Errorf("no bar chart pair selected")
	}
	p := barPairs[pairIndex]
	xActual, ok := snap.Columns.Get(p.X)
	if !ok {
		return actionResult{}, &dataset.MissingColumnError{Column: p.X}
	}
	yActual, ok := snap.Columns.Get(p.Y)
	if !ok {
		return actionResult{}, &dataset.MissingColumnError{Column: p.Y}
	}
	keys, err := snap.Data.Column(xActual)
	if err != nil {
		return actionResult{}, err
	}
	var groups []dataset.Group
	if snap.Data.IsNumeric(yActual) {
		raw, err := snap.Data.Column(yActual)
		if err != nil {
			return actionResult{}, err
		}
		groups = dataset.GroupSum(keys, raw)
	} else {
		groups = dataset.GroupCount(keys)
	}
	top := dataset.TopN(groups, barTopGroups)
	if len(top) == 0 {
		return actionResult{}, dataset.ErrNoData
	}
	bars := make([]viz.Bar, len(top))
	for i, g := range top {
		label := g.Key
		if label == "" {
			label = "(blank)"
		}
		bars[i] = viz.Bar{Label: label, Value: g.Value}
	}
	var (
		img   image.Image
		title string
	)
	if kind == kindBarH {
		title = fmt.Sprintf("Bar (horizontal) – %s vs %s", p.X, p.Y)
		w, h := viz.BarHSize(len(bars))
		img = viz.BarH(title, bars, w, h)
	} else {
		title = fmt.Sprintf("Bar (vertical) – %s vs %s", p.X, p.Y)
		w, h := viz.ChartSize(1000)
		img = viz.BarV(title, bars, w, h)
	}
	return actionResult{
		lines: []string{"Bar chart shown."},
		img:   img,
		title: title,
	}, nil
}

func drawLine(d *dataset.Dataset, column string) (actionResult, error) {
	if column == "" {
		return actionResult{}, fmt.Errorf("no numeric column selected")
	}
	values, dropped, err := d.NumericColumn(column)
	if err != nil {
		return actionResult{}, err
	}
	var lines []string
	if dropped > 0 {
		lines = append(lines, fmt.Sprintf("Dropped %d unconvertible cell(s) from %q.", dropped, column))
	}
	if len(values) == 0 {
		return actionResult{}, dataset.ErrNoNumeric
	}
	w, h := viz.ChartSize(1000)
	title := fmt.Sprintf("Line – %s", column)
	return actionResult{
		lines: append(lines, "Line chart shown."),
		img:   viz.Line(title, column, values, w, h),
		title: title,
	}, nil
}

// runMetric computes SUM, MAX or MIN for the selected metric pair. SUM logs
// the top groups descending; MAX/MIN log the extremal group.
func runMetric(snap *dataset.Snapshot, metricIndex int, mode string) ([]string, error) {
	if snap == nil || snap.Data == nil {
		return nil, dataset.ErrNoData
	}
	if metricIndex < 0 || metricIndex >= len(metrics) {
		return nil, fmt.Errorf("no metric selected")
	}
	m := metrics[metricIndex]
	gActual, ok := snap.Columns.Get(m.groupField)
	if !ok {
		return nil, &dataset.MissingColumnError{Column: m.groupField}
	}
	vActual, ok := snap.Columns.Get(m.valueField)
	if !ok {
		return nil, &dataset.MissingColumnError{Column: m.valueField}
	}
	keys, err := snap.Data.Column(gActual)
	if err != nil {
		return nil, err
	}
	raw, err := snap.Data.Column(vActual)
	if err != nil {
		return nil, err
	}
	groups := dataset.GroupSum(keys, raw)

	switch strings.ToLower(mode) {
	case "sum":
		top := dataset.TopN(groups, sumTopGroups)
		if len(top) == 0 {
			return nil, dataset.ErrNoData
		}
		lines := []string{fmt.Sprintf("[SUM] %s by %s:", m.valueField, m.groupField)}
		for _, g := range top {
			lines = append(lines, fmt.Sprintf("  %s = %s", displayKey(g.Key), viz.FormatTick(g.Value)))
		}
		if nulls := countInvalid(groups); nulls > 0 {
			lines = append(lines, fmt.Sprintf("  (%d group(s) with no numeric values)", nulls))
		}
		return lines, nil
	case "max":
		g, err := dataset.MaxGroup(groups)
		if err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("[MAX] %s with highest %s: %s = %s",
			m.groupField, m.valueField, displayKey(g.Key), viz.FormatTick(g.Value))}, nil
	case "min":
		g, err := dataset.MinGroup(groups)
		if err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("[MIN] %s with lowest %s: %s = %s",
			m.groupField, m.valueField, displayKey(g.Key), viz.FormatTick(g.Value))}, nil
	default:
		return nil, fmt.Errorf("unknown aggregate mode %q", mode)
	}
}

// previewColumns lists the actual headers of the loaded file.
func previewColumns(snap *dataset.Snapshot) ([]string, error) {
	if snap == nil || snap.Data == nil {
		return nil, dataset.ErrNoData
	}
	return []string{"Columns: " + strings.Join(snap.Data.Headers, ", ")}, nil
}

func displayKey(k string) string {
	if k == "" {
		return "(blank)"
	}
	return k
}

func countInvalid(groups []dataset.Group) int {
	n := 0
	for _, g := range groups {
		if !g.Valid {
			n++
		}
	}
	return n
}
