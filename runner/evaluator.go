package runner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ErrStepLimit is returned when a script exceeds its execution step budget
var ErrStepLimit = errors.New("execution step limit exceeded")

// Evaluator runs untrusted script text and writes everything the script
// prints to out. Implementations must not write anywhere else. Script
// failures are returned as errors.
type Evaluator interface {
	Eval(ctx context.Context, name, source string, out io.Writer) error
}

// EvaluatorConfig tunes the Starlark evaluator
type EvaluatorConfig struct {
	// MaxSteps caps interpreter steps per run. 0 means unlimited.
	MaxSteps uint64
	// CacheSize is the number of compiled programs kept. 0 disables caching.
	CacheSize int
}

// DefaultEvaluatorConfig returns the evaluator defaults
func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{
		MaxSteps:  0,
		CacheSize: 64,
	}
}

// StarlarkEvaluator evaluates scripts in the Starlark dialect of Python.
//
// Trust boundary: scripts see only the Starlark universe (len, range, print,
// ...). There is no access to files, network, processes, environment or the
// clock, so the worst a script can do is burn CPU or memory. MaxSteps bounds
// the former; nothing bounds the latter.
type StarlarkEvaluator struct {
	config   EvaluatorConfig
	programs *lru.Cache[string, *starlark.Program]
}

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

// NewStarlarkEvaluator creates an evaluator with the given config
func NewStarlarkEvaluator(config EvaluatorConfig) (*StarlarkEvaluator, error) {
	ev := &StarlarkEvaluator{config: config}

	if config.CacheSize > 0 {
		cache, err := lru.New[string, *starlark.Program](config.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("create program cache: %w", err)
		}
		ev.programs = cache
	}

	return ev, nil
}

// Eval compiles and runs source, sending print output to out
func (ev *StarlarkEvaluator) Eval(ctx context.Context, name, source string, out io.Writer) error {
	prog, err := ev.compile(name, source)
	if err != nil {
		return err
	}

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			_, _ = io.WriteString(out, msg+"\n")
		},
	}
	if ev.config.MaxSteps > 0 {
		thread.SetMaxExecutionSteps(ev.config.MaxSteps)
	}

	if ctx.Done() != nil {
		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ctx.Done():
				thread.Cancel(ctx.Err().Error())
			case <-done:
			}
		}()
	}

	if _, err := prog.Init(thread, nil); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %v", ctxErr, err)
		}
		if ev.config.MaxSteps > 0 && thread.ExecutionSteps() >= ev.config.MaxSteps {
			return fmt.Errorf("%w: %v", ErrStepLimit, err)
		}
		return err
	}

	return nil
}

// compile parses source, reusing a cached program for identical text
func (ev *StarlarkEvaluator) compile(name, source string) (*starlark.Program, error) {
	key := programKey(name, source)
	if ev.programs != nil {
		if prog, ok := ev.programs.Get(key); ok {
			return prog, nil
		}
	}

	_, prog, err := starlark.SourceProgramOptions(fileOptions, name, source, starlark.StringDict{}.Has)
	if err != nil {
		return nil, err
	}

	if ev.programs != nil {
		ev.programs.Add(key, prog)
	}
	return prog, nil
}

// CachedPrograms returns the number of compiled programs held
func (ev *StarlarkEvaluator) CachedPrograms() int {
	if ev.programs == nil {
		return 0
	}
	return ev.programs.Len()
}

// Filename is baked into compiled positions, so it is part of the key.
func programKey(name, source string) string {
	sum := sha256.Sum256([]byte(name + "\x00" + source))
	return hex.EncodeToString(sum[:])
}
