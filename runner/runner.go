// Package runner executes algorithm scripts and measures them.
package runner

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.starlark.net/starlark"
	"go.uber.org/zap"

	"github.com/kacebover/algorithm-runner/catalog"
)

// editorFilename names scripts that are not tied to a catalog entry
const editorFilename = "<editor>"

// Runner evaluates script text, captures its output and times it
type Runner struct {
	eval Evaluator
	log  *zap.SugaredLogger
}

// Option configures a Runner
type Option func(*Runner)

// WithLogger sets the logger used for run events
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.log = logger.Sugar()
		}
	}
}

// New creates a runner around an evaluator
func New(eval Evaluator, opts ...Option) *Runner {
	r := &Runner{
		eval: eval,
		log:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewDefault creates a runner backed by a Starlark evaluator
func NewDefault(config EvaluatorConfig, opts ...Option) (*Runner, error) {
	ev, err := NewStarlarkEvaluator(config)
	if err != nil {
		return nil, err
	}
	return New(ev, opts...), nil
}

// Execute runs source once. selected is the dropdown value; when source is
// the unedited catalog script for it, the result carries its Big-O label.
// Execute never panics and never touches the process stdout.
func (r *Runner) Execute(ctx context.Context, source, selected string) *Result {
	res := &Result{RunID: uuid.NewString()}

	code := strings.TrimSpace(source)
	if code == "" {
		res.Empty = true
		r.log.Debugw("nothing to execute", "run_id", res.RunID)
		return res
	}

	filename := editorFilename
	if _, ok := catalog.Lookup(selected); ok {
		filename = selected
	}

	start := time.Now()
	output, err := capture(func(w io.Writer) error {
		return r.eval.Eval(ctx, filename, code, w)
	})
	elapsed := time.Since(start)

	if err != nil {
		res.Err = err
		r.logFailure(res.RunID, selected, err)
		return res
	}

	res.Output = output
	res.Elapsed = elapsed
	if e, ok := catalog.Match(selected, code); ok {
		res.Complexity = e.Complexity
	}

	r.log.Infow("script executed",
		"run_id", res.RunID,
		"algorithm", selected,
		"elapsed", elapsed,
		"bytes", len(output),
		"complexity", res.Complexity,
	)
	return res
}

func (r *Runner) logFailure(runID, selected string, err error) {
	r.log.Warnw("script failed",
		"run_id", runID,
		"algorithm", selected,
		"error", err,
	)

	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		r.log.Debugw("script backtrace", "run_id", runID, "backtrace", evalErr.Backtrace())
	}
}
