// Package controller provides the bridge between UI and the script runner
package controller

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/kacebover/algorithm-runner/catalog"
	"github.com/kacebover/algorithm-runner/runner"
)

// RunController holds the current selection and runs scripts for the UI
type RunController struct {
	runner *runner.Runner
	config *AppConfig
	logger *zap.SugaredLogger

	// Callbacks
	onLogMessage func(LogLevel, string)
	onResult     func(*runner.Result)

	// State
	runMu      sync.Mutex // held for the whole run
	mu         sync.RWMutex
	selected   string
	lastResult *runner.Result
	isRunning  bool
}

// LogLevel represents log message severity
type LogLevel int

const (
	LogInfo LogLevel = iota
	LogWarning
	LogError
	LogDebug
)

// NewRunController creates a controller with a Starlark-backed runner
func NewRunController(config *AppConfig, logger *zap.Logger) (*RunController, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r, err := runner.NewDefault(config.EvaluatorConfig(), runner.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return NewRunControllerWithRunner(config, r, logger), nil
}

// NewRunControllerWithRunner creates a controller around an existing runner
func NewRunControllerWithRunner(config *AppConfig, r *runner.Runner, logger *zap.Logger) *RunController {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RunController{
		runner: r,
		config: config,
		logger: logger.Sugar(),
	}
}

// SetOnLogMessage sets the callback for log messages
func (rc *RunController) SetOnLogMessage(callback func(LogLevel, string)) {
	rc.onLogMessage = callback
}

// SetOnResult sets the callback for finished runs
func (rc *RunController) SetOnResult(callback func(*runner.Result)) {
	rc.onResult = callback
}

// GetConfig returns the current configuration
func (rc *RunController) GetConfig() *AppConfig {
	return rc.config
}

// Algorithms returns the dropdown entries
func (rc *RunController) Algorithms() []string {
	return catalog.Names()
}

// Select makes name the current algorithm and returns its source.
// Unknown names leave the selection unchanged.
func (rc *RunController) Select(name string) (string, bool) {
	entry, ok := catalog.Lookup(name)
	if !ok {
		rc.log(LogWarning, "Unknown algorithm: "+name)
		return "", false
	}

	rc.mu.Lock()
	rc.selected = name
	rc.mu.Unlock()

	rc.logger.Debugw("algorithm selected", "algorithm", name)
	return entry.Source, true
}

// Selected returns the current algorithm name, or "" if none
func (rc *RunController) Selected() string {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.selected
}

// Run executes source against the current selection. Runs never overlap;
// a second call waits for the first to return.
func (rc *RunController) Run(source string) *runner.Result {
	rc.runMu.Lock()
	defer rc.runMu.Unlock()

	rc.mu.Lock()
	rc.isRunning = true
	selected := rc.selected
	rc.mu.Unlock()

	result := rc.runner.Execute(context.Background(), source, selected)

	rc.mu.Lock()
	rc.isRunning = false
	rc.lastResult = result
	rc.mu.Unlock()

	switch {
	case result.Empty:
		rc.log(LogInfo, runner.NoCodeMessage)
	case result.Err != nil:
		rc.log(LogError, "Run failed: "+result.Err.Error())
	default:
		rc.log(LogInfo, "Run completed in "+result.Elapsed.String())
	}

	if rc.onResult != nil {
		rc.onResult(result)
	}
	return result
}

// IsRunning returns whether a script is executing
func (rc *RunController) IsRunning() bool {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.isRunning
}

// LastResult returns the result of the latest run, or nil after Clear
func (rc *RunController) LastResult() *runner.Result {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.lastResult
}

// Clear discards the last result. The selection is kept.
func (rc *RunController) Clear() {
	rc.mu.Lock()
	rc.lastResult = nil
	rc.mu.Unlock()

	rc.log(LogDebug, "Cleared")
}

// log emits a log message
func (rc *RunController) log(level LogLevel, message string) {
	if rc.onLogMessage != nil {
		rc.onLogMessage(level, message)
	}
}
