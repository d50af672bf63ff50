package main

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kacebover/algorithm-runner/catalog"
	"github.com/kacebover/algorithm-runner/gui/controller"
)

func newTestGUI(t *testing.T, config *controller.AppConfig) *RunnerGUI {
	t.Helper()

	a := test.NewApp()
	t.Cleanup(a.Quit)

	if config == nil {
		config = controller.DefaultConfig()
	}
	ctrl, err := controller.NewRunController(config, nil)
	require.NoError(t, err)

	return NewRunnerGUI(a, ctrl)
}

func catalogSource(t *testing.T, name string) string {
	t.Helper()
	e, ok := catalog.Lookup(name)
	require.True(t, ok, name)
	return e.Source
}

// TestRunnerGUI_InitialState tests the freshly built window
func TestRunnerGUI_InitialState(t *testing.T) {
	rg := newTestGUI(t, nil)

	assert.Equal(t, windowTitle, rg.window.Title())
	assert.Equal(t, catalog.Names(), rg.algoSelect.Options)
	assert.Empty(t, rg.algoSelect.Selected)
	assert.Empty(t, rg.codeEntry.Text)
	assert.Empty(t, rg.outputEntry.Text)
	assert.True(t, rg.outputEntry.Disabled(), "output must be read-only")
}

// TestRunnerGUI_SelectLoadsSource tests the dropdown filling the editor
func TestRunnerGUI_SelectLoadsSource(t *testing.T) {
	rg := newTestGUI(t, nil)

	rg.algoSelect.SetSelected("Binary Search")
	assert.Equal(t, catalogSource(t, "Binary Search"), rg.codeEntry.Text)

	// unsaved edits are discarded on the next selection
	rg.codeEntry.SetText(rg.codeEntry.Text + "\nprint(\"edited\")\n")
	rg.algoSelect.SetSelected("Bubble Sort")

	assert.Equal(t, catalogSource(t, "Bubble Sort"), rg.codeEntry.Text)
	assert.Equal(t, "Bubble Sort", rg.ctrl.Selected())
}

// TestRunnerGUI_RunLinearSearch tests a full run through the Run button
func TestRunnerGUI_RunLinearSearch(t *testing.T) {
	rg := newTestGUI(t, nil)
	rg.algoSelect.SetSelected("Linear Search")

	test.Tap(rg.runButton)

	out := rg.outputEntry.Text
	assert.True(t, strings.HasPrefix(out, "Element found at index: 4\n"), out)
	assert.Contains(t, out, "\nBig-O Complexity: O(n)\n")
	assert.Contains(t, out, "Execution Time: ")
	assert.True(t, strings.HasSuffix(out, " seconds\n"), out)
}

// TestRunnerGUI_RunEditedSource tests that edits drop the Big-O label
func TestRunnerGUI_RunEditedSource(t *testing.T) {
	rg := newTestGUI(t, nil)
	rg.algoSelect.SetSelected("Linear Search")
	rg.codeEntry.SetText(strings.Replace(rg.codeEntry.Text, "target = 9", "target = 43", 1))

	test.Tap(rg.runButton)

	assert.True(t, strings.HasPrefix(rg.outputEntry.Text, "Element found at index: 2\n"))
	assert.NotContains(t, rg.outputEntry.Text, "Big-O")
}

// TestRunnerGUI_RunError tests the Selection Sort authoring bug surfacing
func TestRunnerGUI_RunError(t *testing.T) {
	rg := newTestGUI(t, nil)
	rg.algoSelect.SetSelected("Selection Sort")

	test.Tap(rg.runButton)

	assert.True(t, strings.HasPrefix(rg.outputEntry.Text, "Error: "), rg.outputEntry.Text)
	assert.True(t, strings.HasPrefix(rg.statusLabel.Text, "❌"))

	// the window keeps working after a failure
	rg.algoSelect.SetSelected("Insertion Sort")
	test.Tap(rg.runButton)
	assert.True(t, strings.HasPrefix(rg.outputEntry.Text, "Sorted array: [3, 9, 10, 27, 38, 43, 82]\n"))
}

// TestRunnerGUI_RunEmpty tests pressing Run with no code
func TestRunnerGUI_RunEmpty(t *testing.T) {
	rg := newTestGUI(t, nil)

	test.Tap(rg.runButton)

	assert.Equal(t, "No code to execute.\n", rg.outputEntry.Text)
}

// TestRunnerGUI_Clear tests resetting both panels
func TestRunnerGUI_Clear(t *testing.T) {
	rg := newTestGUI(t, nil)
	rg.algoSelect.SetSelected("Bubble Sort")
	test.Tap(rg.runButton)
	require.NotEmpty(t, rg.outputEntry.Text)

	test.Tap(rg.clearButton)

	assert.Empty(t, rg.codeEntry.Text)
	assert.Empty(t, rg.outputEntry.Text)
	assert.Nil(t, rg.ctrl.LastResult())
}

// TestRunnerGUI_DefaultAlgorithm tests preselection from config
func TestRunnerGUI_DefaultAlgorithm(t *testing.T) {
	config := controller.DefaultConfig()
	config.DefaultAlgorithm = "Binary Search"

	rg := newTestGUI(t, config)

	assert.Equal(t, "Binary Search", rg.algoSelect.Selected)
	assert.Equal(t, catalogSource(t, "Binary Search"), rg.codeEntry.Text)
}

// TestAppTheme tests palette overrides and variant pinning
func TestAppTheme(t *testing.T) {
	light := newAppTheme("light")
	assert.Equal(t, colorPage, light.Color(theme.ColorNameBackground, theme.VariantDark))
	assert.Equal(t, colorButton, light.Color(theme.ColorNamePrimary, theme.VariantDark))
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameForeground, theme.VariantLight),
		light.Color(theme.ColorNameForeground, theme.VariantDark))
	assert.Equal(t, colorCard, light.cardColor())

	system := newAppTheme("system")
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameForeground, theme.VariantDark),
		system.Color(theme.ColorNameForeground, theme.VariantDark))

	dark := newAppTheme("dark")
	assert.NotEqual(t, colorCard, dark.cardColor())

	assert.Equal(t, theme.VariantLight, newAppTheme("bogus").variant)
}
