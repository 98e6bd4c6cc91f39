// Package dataset holds the in-memory table loaded from a spreadsheet file,
// the logical-to-actual column resolver, and the grouping/aggregation
// primitives the viewer apps dispatch to.
package dataset

import (
	"strconv"
	"strings"
)

// Dataset is an in-memory table with named columns and a stable row order.
// Cells are kept as trimmed strings; numeric interpretation happens on demand
// via NumericColumn.
type Dataset struct {
	Headers []string
	Rows    [][]string // row-major; every row padded to len(Headers)
}

// Snapshot pairs a dataset with the column map resolved from it. The two are
// built together and replaced together; a ColumnMap is only valid for the
// dataset it was resolved against.
type Snapshot struct {
	Path    string
	Data    *Dataset
	Columns ColumnMap
}

// NumRows returns the number of data rows (header excluded).
func (d *Dataset) NumRows() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// ColumnIndex returns the position of the given header, or -1.
func (d *Dataset) ColumnIndex(name string) int {
	if d == nil {
		return -1
	}
	for i, h := range d.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns the raw cells of the named column in row order.
func (d *Dataset) Column(name string) ([]string, error) {
	ix := d.ColumnIndex(name)
	if ix < 0 {
		return nil, &MissingColumnError{Column: name}
	}
	out := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		out[i] = row[ix]
	}
	return out, nil
}

// NumericColumn coerces the named column to float64 values. Empty cells and
// cells that fail to parse are dropped; dropped reports how many non-empty
// cells were discarded so callers can log an informational note.
func (d *Dataset) NumericColumn(name string) (values []float64, dropped int, err error) {
	cells, err := d.Column(name)
	if err != nil {
		return nil, 0, err
	}
	values = make([]float64, 0, len(cells))
	for _, c := range cells {
		if c == "" {
			continue
		}
		v, perr := parseNumber(c)
		if perr != nil {
			dropped++
			continue
		}
		values = append(values, v)
	}
	return values, dropped, nil
}

// IsNumeric reports whether every non-empty cell of the column parses as a
// number and at least one such cell exists.
func (d *Dataset) IsNumeric(name string) bool {
	cells, err := d.Column(name)
	if err != nil {
		return false
	}
	seen := 0
	for _, c := range cells {
		if c == "" {
			continue
		}
		if _, perr := parseNumber(c); perr != nil {
			return false
		}
		seen++
	}
	return seen > 0
}

// NumericHeaders returns the headers whose columns satisfy IsNumeric, in
// column order. Used to populate numeric-only selectors.
func (d *Dataset) NumericHeaders() []string {
	if d == nil {
		return nil
	}
	var out []string
	for _, h := range d.Headers {
		if d.IsNumeric(h) {
			out = append(out, h)
		}
	}
	return out
}

// parseNumber accepts plain floats plus thousands separators, which excel
// exports produce routinely.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ",", "")
	}
	return strconv.ParseFloat(s, 64)
}
