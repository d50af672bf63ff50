// Package main provides GUI launcher
package main

import (
	"fmt"
	"io"
)

// LaunchGUI prints how to build and start the desktop app.
// The GUI lives in its own binary so the CLI builds without cgo.
func LaunchGUI(w io.Writer) {
	fmt.Fprintln(w, "To launch the GUI version, build the GUI from cmd/gui:")
	fmt.Fprintln(w, "  go build -o algorun-gui ./cmd/gui")
	fmt.Fprintln(w, "Then run: ./algorun-gui")
}
