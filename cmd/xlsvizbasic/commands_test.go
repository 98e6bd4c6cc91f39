package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Liauuu/excel-visualizer/src/dataset"
)

func testSnapshot() *dataset.Snapshot {
	d := &dataset.Dataset{
		Headers: []string{"Region", "Quantity", "Mixed"},
		Rows: [][]string{
			{"North", "3", "1"},
			{"South", "10", "two"},
			{"North", "7", "3"},
			{"East", "1", ""},
		},
	}
	return &dataset.Snapshot{Path: "test.xlsx", Data: d, Columns: dataset.ColumnMap{}}
}

func TestRunActionNoSnapshot(t *testing.T) {
	_, err := runAction(nil, "Region", actFindMax)
	if !errors.Is(err, dataset.ErrNoData) {
		t.Fatalf("err = %v, want ErrNoData", err)
	}
}

func TestRunActionMissingColumn(t *testing.T) {
	_, err := runAction(testSnapshot(), "Nope", actHistogram)
	var mce *dataset.MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("err = %v, want MissingColumnError", err)
	}
	if !dataset.IsExpected(err) {
		t.Error("missing column should be an expected failure")
	}
}

func TestFindMaxNumeric(t *testing.T) {
	res, err := runAction(testSnapshot(), "Quantity", actFindMax)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.lines) != 1 || !strings.Contains(res.lines[0], "[Max] Quantity = 10.0") {
		t.Errorf("lines = %v", res.lines)
	}
}

func TestFindMinLexicographic(t *testing.T) {
	res, err := runAction(testSnapshot(), "Region", actFindMin)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.lines[0], "[Min] Region = East") {
		t.Errorf("lines = %v", res.lines)
	}
}

func TestFindMaxEmptyColumn(t *testing.T) {
	snap := &dataset.Snapshot{Data: &dataset.Dataset{
		Headers: []string{"Empty"},
		Rows:    [][]string{{""}, {""}},
	}}
	_, err := runAction(snap, "Empty", actFindMax)
	if !errors.Is(err, dataset.ErrNoData) {
		t.Fatalf("err = %v, want ErrNoData", err)
	}
}

func TestHistogramCoercionNote(t *testing.T) {
	res, err := runAction(testSnapshot(), "Mixed", actHistogram)
	if err != nil {
		t.Fatal(err)
	}
	if res.img == nil {
		t.Fatal("expected a chart image")
	}
	joined := strings.Join(res.lines, "\n")
	if !strings.Contains(joined, "not numeric") {
		t.Errorf("missing coercion note: %v", res.lines)
	}
	if !strings.Contains(joined, "Dropped 1") {
		t.Errorf("missing dropped-cell note: %v", res.lines)
	}
}

func TestBarHorizontalNumericCap(t *testing.T) {
	rows := make([][]string, 40)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("%d", i+1)}
	}
	snap := &dataset.Snapshot{Data: &dataset.Dataset{Headers: []string{"V"}, Rows: rows}}

	res, err := runAction(snap, "V", actBarH)
	if err != nil {
		t.Fatal(err)
	}
	wantTitle := fmt.Sprintf("Top %d Largest Values in V", barTopValues)
	if res.title != wantTitle {
		t.Errorf("title = %q, want %q", res.title, wantTitle)
	}
}

func TestBarHorizontalCategoriesCap(t *testing.T) {
	rows := make([][]string, 25)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("cat-%02d", i)}
	}
	snap := &dataset.Snapshot{Data: &dataset.Dataset{Headers: []string{"C"}, Rows: rows}}

	res, err := runAction(snap, "C", actBarH)
	if err != nil {
		t.Fatal(err)
	}
	wantTitle := fmt.Sprintf("Top %d Categories in C", barTopCategories)
	if res.title != wantTitle {
		t.Errorf("title = %q, want %q", res.title, wantTitle)
	}
}

func TestPieNumericUsesBins(t *testing.T) {
	res, err := runAction(testSnapshot(), "Quantity", actPie)
	if err != nil {
		t.Fatal(err)
	}
	if res.img == nil || res.title != "Pie Chart of Quantity" {
		t.Errorf("res = %+v", res)
	}
}

func TestPieCategorical(t *testing.T) {
	res, err := runAction(testSnapshot(), "Region", actPie)
	if err != nil {
		t.Fatal(err)
	}
	if res.img == nil {
		t.Fatal("expected a chart image")
	}
}

func TestUnknownActionNotice(t *testing.T) {
	res, err := runAction(testSnapshot(), "Region", "Scatter Plot")
	if err != nil {
		t.Fatal(err)
	}
	if res.notice == "" || res.img != nil {
		t.Errorf("unknown action should yield a notice and no image, got %+v", res)
	}
}

func TestLineChart(t *testing.T) {
	res, err := runAction(testSnapshot(), "Quantity", actLine)
	if err != nil {
		t.Fatal(err)
	}
	if res.img == nil || !strings.Contains(strings.Join(res.lines, " "), "Line chart shown.") {
		t.Errorf("res = %+v", res)
	}
}
