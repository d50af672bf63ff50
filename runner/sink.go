package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"
)

var errSinkReleased = errors.New("output sink released")

// sink collects the output of a single run. It is created per call and
// released when the call returns; writes after release are rejected so a
// straggling writer cannot leak into a later run.
type sink struct {
	mu       sync.Mutex
	buf      bytes.Buffer
	released bool
}

func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return 0, errSinkReleased
	}
	return s.buf.Write(p)
}

func (s *sink) release() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.released = true
	out := s.buf.String()
	s.buf.Reset()
	return out
}

// capture runs fn with a fresh sink and returns what fn wrote to it.
// The sink is released on every exit path; a panic in fn becomes an error.
func capture(fn func(w io.Writer) error) (output string, err error) {
	s := &sink{}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("evaluation panicked: %v", r)
		}
		output = s.release()
	}()

	err = fn(s)
	return output, err
}
