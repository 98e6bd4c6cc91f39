// xlsviz is the sales-schema visualization tool: open a spreadsheet, pick a
// chart type with its fixed parameters, or run SUM/MAX/MIN metrics over the
// predefined column pairs.
package main

import (
	"flag"
	"fmt"
	"image"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/Liauuu/excel-visualizer/src/dataset"
	"github.com/Liauuu/excel-visualizer/src/uihelpers"
)

const maxRecentFiles = 5

type uiState struct {
	app    fyne.App
	window fyne.Window

	filePath string
	snap     *dataset.Snapshot

	ring       *uihelpers.LogRing
	pathLabel  *widget.Label
	previewBtn *widget.Button

	chartSelect *widget.Select
	pieLabel    *widget.Label
	pieSelect   *widget.Select
	pairLabel   *widget.Label
	pairSelect  *widget.Select
	lineLabel   *widget.Label
	lineSelect  *widget.Select

	metricSelect *widget.Select
	logList      *widget.List
}

func main() {
	var fileFlag string
	flag.StringVar(&fileFlag, "file", "", "Spreadsheet to open at startup (.xlsx or .csv)")
	flag.Parse()

	a := app.NewWithID("com.liauuu.excelvisualizer")
	w := a.NewWindow("Excel Visualization")
	w.Resize(fyne.NewSize(520, 760))

	state := &uiState{
		app:      a,
		window:   w,
		filePath: fileFlag,
		ring:     uihelpers.NewLogRing(logCapacity),
	}

	state.pathLabel = widget.NewLabel("Please choose a spreadsheet file.")
	state.pathLabel.Wrapping = fyne.TextWrapWord
	openBtn := widget.NewButton("Open File…", func() { openFileDialog(state) })
	state.previewBtn = widget.NewButton("Preview Columns", func() { previewSelected(state) })
	state.previewBtn.Disable()

	state.chartSelect = widget.NewSelect(chartKinds, func(string) { updateInputVisibility(state) })
	state.chartSelect.PlaceHolder = "Select chart type…"

	state.pieLabel = widget.NewLabel("Pie column")
	state.pieSelect = widget.NewSelect([]string{}, nil)
	state.pieSelect.PlaceHolder = "Select column…"

	pairLabels := make([]string, len(barPairs))
	for i, p := range barPairs {
		pairLabels[i] = pairLabel(p)
	}
	state.pairLabel = widget.NewLabel("X and Y columns")
	state.pairSelect = widget.NewSelect(pairLabels, nil)
	state.pairSelect.PlaceHolder = "Select pair…"

	state.lineLabel = widget.NewLabel("Numeric column")
	state.lineSelect = widget.NewSelect([]string{}, nil)
	state.lineSelect.PlaceHolder = "Select column…"

	drawBtn := widget.NewButton("Draw Chart", func() { drawSelected(state) })

	metricLabels := make([]string, len(metrics))
	for i, m := range metrics {
		metricLabels[i] = m.label
	}
	state.metricSelect = widget.NewSelect(metricLabels, nil)
	state.metricSelect.PlaceHolder = "Select metric…"
	metricRow := container.NewGridWithColumns(3,
		widget.NewButton("SUM", func() { runMetricSelected(state, "sum") }),
		widget.NewButton("MAX", func() { runMetricSelected(state, "max") }),
		widget.NewButton("MIN", func() { runMetricSelected(state, "min") }),
	)

	state.logList = widget.NewList(
		func() int { return state.ring.Len() },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(state.ring.Line(i))
		},
	)

	top := container.NewVBox(
		state.pathLabel,
		container.NewGridWithColumns(2, openBtn, state.previewBtn),
		widget.NewLabel("Chart type"),
		state.chartSelect,
		state.pieLabel, state.pieSelect,
		state.pairLabel, state.pairSelect,
		state.lineLabel, state.lineSelect,
		drawBtn,
		widget.NewLabel("Metrics"),
		state.metricSelect,
		metricRow,
		widget.NewLabel("Log"),
	)
	w.SetContent(container.NewBorder(top, nil, nil, nil, state.logList))
	w.SetMainMenu(buildMenus(state))

	updateInputVisibility(state)
	logLine(state, "Please select a spreadsheet file.")
	logLine(state, "Then pick a chart type, or run a metric.")

	loadPrefs(state)
	if state.filePath != "" {
		loadFile(state, state.filePath)
	}

	w.ShowAndRun()
}

// updateInputVisibility shows only the parameter widgets the selected chart
// type needs.
func updateInputVisibility(state *uiState) {
	hide := func(objs ...fyne.CanvasObject) {
		for _, o := range objs {
			o.Hide()
		}
	}
	show := func(objs ...fyne.CanvasObject) {
		for _, o := range objs {
			o.Show()
		}
	}
	hide(state.pieLabel, state.pieSelect, state.pairLabel, state.pairSelect, state.lineLabel, state.lineSelect)
	switch state.chartSelect.Selected {
	case kindPie:
		show(state.pieLabel, state.pieSelect)
	case kindBarV, kindBarH:
		show(state.pairLabel, state.pairSelect)
	case kindLine:
		show(state.lineLabel, state.lineSelect)
	}
}

func logLine(state *uiState, line string) {
	state.ring.Add(line)
	refreshLog(state)
}

func logLines(state *uiState, lines []string) {
	state.ring.AddAll(lines)
	refreshLog(state)
}

func refreshLog(state *uiState) {
	if state.logList != nil {
		state.logList.Refresh()
		state.logList.ScrollToBottom()
	}
}

func openFileDialog(state *uiState) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		loadFile(state, rc.URI().Path())
	}, state.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".xlsx", ".csv"}))
	d.Show()
}

// loadFile replaces the snapshot and re-resolves the sales schema; on failure
// the previous dataset stays live.
func loadFile(state *uiState, path string) {
	d, err := dataset.Load(path)
	if err != nil {
		fmt.Printf("[viz] %v\n", err)
		dialog.ShowError(err, state.window)
		return
	}
	state.filePath = path
	cols := dataset.Resolve(d.Headers, logicalFields)
	state.snap = &dataset.Snapshot{Path: path, Data: d, Columns: cols}
	state.pathLabel.SetText("Selected: " + uihelpers.TruncatePath(path, 60))
	state.previewBtn.Enable()

	// Pie and line selectors only offer columns the file actually has.
	pieOpts := make([]string, 0, len(pieCandidates))
	for _, logical := range pieCandidates {
		if actual, ok := cols.Get(logical); ok {
			pieOpts = append(pieOpts, actual)
		}
	}
	state.pieSelect.Options = pieOpts
	state.pieSelect.ClearSelected()
	state.pieSelect.Refresh()

	state.lineSelect.Options = d.NumericHeaders()
	state.lineSelect.ClearSelected()
	state.lineSelect.Refresh()

	state.ring.Clear()
	logLine(state, "File loaded successfully.")
	logLine(state, fmt.Sprintf("Resolved %d of %d expected columns.", len(cols), len(logicalFields)))
	logLine(state, "Pick a chart type, or run a metric.")

	addRecentFile(state, path)
	savePrefs(state)
	state.window.SetMainMenu(buildMenus(state))
}

func previewSelected(state *uiState) {
	lines, err := previewColumns(state.snap)
	if err != nil {
		dialog.ShowInformation("No Data", "Please select a file first.", state.window)
		return
	}
	logLines(state, lines)
}

func drawSelected(state *uiState) {
	if state.snap == nil {
		dialog.ShowInformation("No Data", "Please select a file first.", state.window)
		logLine(state, "Please select a spreadsheet file.")
		return
	}
	kind := state.chartSelect.Selected
	if kind == "" {
		dialog.ShowInformation("Select Chart", "Please choose a chart type.", state.window)
		logLine(state, "Please choose a chart type.")
		return
	}

	res, err := drawChart(state.snap, kind, state.pieSelect.Selected, state.pairSelect.SelectedIndex(), state.lineSelect.Selected)
	if err != nil {
		logLine(state, err.Error())
		if dataset.IsExpected(err) {
			dialog.ShowInformation("Warning", err.Error(), state.window)
		} else {
			dialog.ShowError(err, state.window)
		}
		return
	}
	logLines(state, res.lines)
	if res.notice != "" {
		dialog.ShowInformation("Not Implemented", res.notice, state.window)
	}
	if res.img != nil {
		showChart(state, res.title, res.img)
	}
}

func runMetricSelected(state *uiState, mode string) {
	if state.snap == nil {
		dialog.ShowInformation("No Data", "Please select a file first.", state.window)
		logLine(state, "Please select a spreadsheet file.")
		return
	}
	ix := state.metricSelect.SelectedIndex()
	if ix < 0 {
		dialog.ShowInformation("Select Metric", "Please choose a metric pair.", state.window)
		logLine(state, "Please choose a metric pair.")
		return
	}
	lines, err := runMetric(state.snap, ix, mode)
	if err != nil {
		logLine(state, err.Error())
		if dataset.IsExpected(err) {
			dialog.ShowInformation("Warning", err.Error(), state.window)
		} else {
			dialog.ShowError(err, state.window)
		}
		return
	}
	logLines(state, lines)
}

// showChart opens an ephemeral window sized to the rendered image.
func showChart(state *uiState, title string, img image.Image) {
	w := state.app.NewWindow(title)
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	b := img.Bounds()
	ci.SetMinSize(fyne.NewSize(float32(b.Dx())/1.5, float32(b.Dy())/1.5))
	w.SetContent(ci)
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	w.Show()
}

func buildMenus(state *uiState) *fyne.MainMenu {
	items := []*fyne.MenuItem{
		fyne.NewMenuItem("Open…", func() { openFileDialog(state) }),
	}
	if recents := recentFiles(state); len(recents) > 0 {
		sub := make([]*fyne.MenuItem, 0, len(recents))
		for _, p := range recents {
			path := p
			sub = append(sub, fyne.NewMenuItem(uihelpers.TruncatePath(path, 48), func() {
				loadFile(state, path)
			}))
		}
		recent := fyne.NewMenuItem("Open Recent", nil)
		recent.ChildMenu = fyne.NewMenu("Open Recent", sub...)
		items = append(items, recent)
		items = append(items, fyne.NewMenuItem("Clear Recent", func() {
			state.app.Preferences().SetString("recentFiles", "")
			state.window.SetMainMenu(buildMenus(state))
		}))
	}
	return fyne.NewMainMenu(fyne.NewMenu("File", items...))
}

func recentFiles(state *uiState) []string {
	raw := state.app.Preferences().StringWithFallback("recentFiles", "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, "\n") {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// addRecentFile moves path to the front of the recents list, capped.
func addRecentFile(state *uiState, path string) {
	out := []string{path}
	for _, p := range recentFiles(state) {
		if p != path && len(out) < maxRecentFiles {
			out = append(out, p)
		}
	}
	state.app.Preferences().SetString("recentFiles", strings.Join(out, "\n"))
}

func savePrefs(state *uiState) {
	state.app.Preferences().SetString("lastFile", state.filePath)
	state.app.Preferences().SetString("lastChartKind", state.chartSelect.Selected)
}

func loadPrefs(state *uiState) {
	if state.filePath == "" {
		state.filePath = state.app.Preferences().StringWithFallback("lastFile", "")
	}
	if kind := state.app.Preferences().StringWithFallback("lastChartKind", ""); kind != "" {
		state.chartSelect.SetSelected(kind)
	}
}
