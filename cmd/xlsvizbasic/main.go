// xlsvizbasic is the simple spreadsheet preview tool: open a file, pick any
// column and one of six actions, and get a scalar result in the log or a
// chart in its own window.
package main

import (
	"flag"
	"fmt"
	"image"

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

const logCapacity = 60

type uiState struct {
	app    fyne.App
	window fyne.Window

	filePath string
	snap     *dataset.Snapshot

	ring         *uihelpers.LogRing
	pathLabel    *widget.Label
	columnSelect *widget.Select
	actionSelect *widget.Select
	logList      *widget.List
}

func main() {
	var fileFlag string
	flag.StringVar(&fileFlag, "file", "", "Spreadsheet to open at startup (.xlsx or .csv)")
	flag.Parse()

	a := app.NewWithID("com.liauuu.excelvisualizer.basic")
	w := a.NewWindow("Excel Data Visualization Tool")
	w.Resize(fyne.NewSize(460, 680))

	state := &uiState{
		app:      a,
		window:   w,
		filePath: fileFlag,
		ring:     uihelpers.NewLogRing(logCapacity),
	}

	state.pathLabel = widget.NewLabel("Please choose a spreadsheet file.")
	state.pathLabel.Wrapping = fyne.TextWrapWord
	openBtn := widget.NewButton("Open File…", func() { openFileDialog(state) })

	state.columnSelect = widget.NewSelect([]string{}, nil)
	state.columnSelect.PlaceHolder = "Select column…"
	state.actionSelect = widget.NewSelect(actions, nil)
	state.actionSelect.PlaceHolder = "Select chart type…"

	runBtn := widget.NewButton("Preview Visualization", func() { runSelected(state) })

	state.logList = widget.NewList(
		func() int { return state.ring.Len() },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(state.ring.Line(i))
		},
	)

	top := container.NewVBox(
		state.pathLabel,
		openBtn,
		widget.NewLabel("Select a column"),
		state.columnSelect,
		widget.NewLabel("Choose a chart type"),
		state.actionSelect,
		runBtn,
		widget.NewLabel("Preview"),
	)
	w.SetContent(container.NewBorder(top, nil, nil, nil, state.logList))

	logLine(state, "Please select a spreadsheet file.")
	logLine(state, "After selecting a file, choose a column to visualize.")
	logLine(state, "Then choose a chart type and click 'Preview Visualization'.")

	loadPrefs(state)
	if state.filePath != "" {
		loadFile(state, state.filePath)
	}

	w.ShowAndRun()
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

// loadFile replaces the snapshot; on failure the previous dataset stays live.
func loadFile(state *uiState, path string) {
	d, err := dataset.Load(path)
	if err != nil {
		fmt.Printf("[viz] %v\n", err)
		dialog.ShowError(err, state.window)
		return
	}
	state.filePath = path
	state.snap = &dataset.Snapshot{Path: path, Data: d, Columns: dataset.ColumnMap{}}
	state.pathLabel.SetText("Selected: " + uihelpers.TruncatePath(path, 56))

	state.columnSelect.Options = append([]string{}, d.Headers...)
	state.columnSelect.ClearSelected()
	state.columnSelect.Refresh()

	state.ring.Clear()
	logLine(state, "File loaded successfully.")
	logLine(state, "Please select a column to visualize.")
	logLine(state, "Next, choose a chart type.")
	savePrefs(state)
}

func runSelected(state *uiState) {
	if state.snap == nil {
		dialog.ShowInformation("No Data", "Please select a file first.", state.window)
		logLine(state, "Please select a spreadsheet file.")
		return
	}
	col := state.columnSelect.Selected
	if col == "" {
		dialog.ShowInformation("Select Column", "Please select a column.", state.window)
		logLine(state, "Please select a column first.")
		return
	}
	action := state.actionSelect.Selected
	if action == "" {
		dialog.ShowInformation("Select Chart", "Please choose a chart type.", state.window)
		logLine(state, "Please choose a chart type.")
		return
	}

	res, err := runAction(state.snap, col, action)
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

func savePrefs(state *uiState) {
	state.app.Preferences().SetString("lastFile", state.filePath)
}

func loadPrefs(state *uiState) {
	if state.filePath == "" {
		state.filePath = state.app.Preferences().StringWithFallback("lastFile", "")
	}
}
