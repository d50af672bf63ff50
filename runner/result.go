package runner

import (
	"fmt"
	"strings"
	"time"
)

// NoCodeMessage is shown when Run is pressed with an empty editor
const NoCodeMessage = "No code to execute."

// Result is the outcome of one Execute call
type Result struct {
	RunID      string
	Output     string
	Elapsed    time.Duration
	Complexity string
	Err        error
	Empty      bool
}

// ElapsedSeconds returns the measured wall-clock time in seconds
func (r *Result) ElapsedSeconds() float64 {
	return r.Elapsed.Seconds()
}

// OK reports whether the script ran to completion
func (r *Result) OK() bool {
	return !r.Empty && r.Err == nil
}

// Text renders the result the way the output panel shows it
func (r *Result) Text() string {
	switch {
	case r.Empty:
		return NoCodeMessage + "\n"
	case r.Err != nil:
		return fmt.Sprintf("Error: %v\n", r.Err)
	}

	var sb strings.Builder
	sb.WriteString(r.Output)
	if r.Complexity != "" {
		fmt.Fprintf(&sb, "\nBig-O Complexity: %s\n", r.Complexity)
	}
	fmt.Fprintf(&sb, "Execution Time: %.4f seconds\n", r.ElapsedSeconds())
	return sb.String()
}
