//go:generate go run ../../scripts/makeicon.go Icon.png

package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/kacebover/algorithm-runner/gui/controller"
	"github.com/kacebover/algorithm-runner/logging"
	"github.com/kacebover/algorithm-runner/runner"
)

const windowTitle = "Python Sorting Algorithm Compiler"

// RunnerGUI represents the GUI application
type RunnerGUI struct {
	app    fyne.App
	window fyne.Window
	ctrl   *controller.RunController
	config *controller.AppConfig
	theme  *appTheme

	// Inputs
	algoSelect *widget.Select
	codeEntry  *widget.Entry

	// Output
	outputEntry *widget.Entry
	statusLabel *widget.Label

	// Buttons
	runButton   *widget.Button
	clearButton *widget.Button
	helpButton  *widget.Button
}

// NewRunnerGUI creates the main window on a
func NewRunnerGUI(a fyne.App, ctrl *controller.RunController) *RunnerGUI {
	config := ctrl.GetConfig()
	th := newAppTheme(config.Theme)
	a.Settings().SetTheme(th)

	w := a.NewWindow(windowTitle)
	w.Resize(fyne.NewSize(float32(config.WindowWidth), float32(config.WindowHeight)))
	w.CenterOnScreen()

	rg := &RunnerGUI{
		app:    a,
		window: w,
		ctrl:   ctrl,
		config: config,
		theme:  th,
	}

	rg.buildUI()
	rg.setupShortcuts()
	rg.ctrl.SetOnLogMessage(rg.onLogMessage)

	if config.DefaultAlgorithm != "" {
		rg.algoSelect.SetSelected(config.DefaultAlgorithm)
	}
	return rg
}

func (rg *RunnerGUI) buildUI() {
	// === HEADER ===
	titleText := canvas.NewText("DSA Project", color.Black)
	titleText.TextSize = 30
	titleText.Alignment = fyne.TextAlignCenter

	rg.helpButton = widget.NewButtonWithIcon("", theme.HelpIcon(), rg.showHelp)
	rg.helpButton.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, nil, rg.helpButton, titleText)

	// === DROPDOWN ===
	rg.algoSelect = widget.NewSelect(rg.ctrl.Algorithms(), rg.onSelect)
	rg.algoSelect.PlaceHolder = "Select Sorting Algorithm"

	selectSection := container.NewVBox(
		widget.NewLabelWithStyle("Select Sorting Algorithm", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		rg.algoSelect,
	)

	// === BUTTONS ===
	rg.runButton = widget.NewButtonWithIcon("Run", theme.MediaPlayIcon(), rg.onRun)
	rg.runButton.Importance = widget.HighImportance

	rg.clearButton = widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), rg.onClear)
	rg.clearButton.Importance = widget.HighImportance

	// === EDITOR ===
	rg.codeEntry = widget.NewMultiLineEntry()
	rg.codeEntry.SetPlaceHolder("Pick an algorithm or type a script...")
	rg.codeEntry.TextStyle.Monospace = rg.config.MonospaceEditor
	rg.codeEntry.Wrapping = fyne.TextWrapOff

	codeSection := container.NewBorder(
		widget.NewLabelWithStyle("Python Code", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		rg.codeEntry,
	)

	// === OUTPUT ===
	rg.outputEntry = widget.NewMultiLineEntry()
	rg.outputEntry.TextStyle.Monospace = true
	rg.outputEntry.Wrapping = fyne.TextWrapWord
	rg.outputEntry.Disable()

	outputSection := container.NewBorder(
		widget.NewLabelWithStyle("Output", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(rg.clearButton),
		nil, nil,
		rg.outputEntry,
	)

	rg.statusLabel = widget.NewLabel("Ready")

	// === MAIN LAYOUT ===
	controls := container.NewGridWithColumns(2,
		rg.card(selectSection),
		rg.card(container.NewVBox(layout.NewSpacer(), container.NewHBox(rg.runButton))),
	)
	panels := container.NewGridWithColumns(2,
		rg.card(codeSection),
		rg.card(outputSection),
	)

	content := container.NewBorder(
		container.NewVBox(rg.card(header), widget.NewSeparator(), controls),
		rg.card(rg.statusLabel),
		nil, nil,
		panels,
	)

	rg.window.SetContent(container.NewPadded(content))
}

// card places obj on a rounded panel
func (rg *RunnerGUI) card(obj fyne.CanvasObject) fyne.CanvasObject {
	bg := canvas.NewRectangle(rg.theme.cardColor())
	bg.CornerRadius = 12
	return container.NewStack(bg, container.NewPadded(obj))
}

func (rg *RunnerGUI) setupShortcuts() {
	// Ctrl+Enter or Cmd+Enter runs the editor contents
	rg.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyReturn,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) {
		rg.onRun()
	})
}

// onSelect loads the chosen algorithm, replacing any edits
func (rg *RunnerGUI) onSelect(name string) {
	src, ok := rg.ctrl.Select(name)
	if !ok {
		return
	}
	rg.codeEntry.SetText(src)
	rg.statusLabel.SetText("Loaded " + name)
}

func (rg *RunnerGUI) onRun() {
	result := rg.ctrl.Run(rg.codeEntry.Text)
	rg.showResult(result)
}

func (rg *RunnerGUI) showResult(result *runner.Result) {
	rg.outputEntry.SetText(result.Text())
}

func (rg *RunnerGUI) onClear() {
	rg.codeEntry.SetText("")
	rg.outputEntry.SetText("")
	rg.ctrl.Clear()
	rg.statusLabel.SetText("Ready")
}

func (rg *RunnerGUI) onLogMessage(level controller.LogLevel, msg string) {
	switch level {
	case controller.LogError:
		rg.statusLabel.SetText("❌ " + msg)
	case controller.LogWarning:
		rg.statusLabel.SetText("⚠️ " + msg)
	case controller.LogInfo:
		rg.statusLabel.SetText("✅ " + msg)
	}
}

func (rg *RunnerGUI) showHelp() {
	helpText := `Pick an algorithm from the dropdown to load its source,
edit it if you like, then press Run (Ctrl+Enter).

Scripts use a Python-like dialect: def, for, while, if/elif/else,
lists, dicts and print() all work. There is no file, network
or import access.

The Big-O label is shown only when the script is unchanged
from the catalog. Clear empties both panels.`

	dialog.ShowInformation("Help", helpText, rg.window)
}

func (rg *RunnerGUI) Run() {
	rg.window.ShowAndRun()
}

func main() {
	config := controller.LoadConfig()

	logger := logging.MustNew(config.LogLevel, config.LogDevelopment)
	defer func() { _ = logger.Sync() }()

	ctrl, err := controller.NewRunController(config, logger)
	if err != nil {
		logger.Fatal("failed to create controller", zap.Error(err))
	}

	logger.Info("starting gui",
		zap.String("theme", config.Theme),
		zap.Uint64("max_steps", config.MaxSteps),
		zap.Int("cache_size", config.CacheSize),
	)

	gui := NewRunnerGUI(app.NewWithID("com.algorithmrunner.app"), ctrl)
	gui.Run()
}
