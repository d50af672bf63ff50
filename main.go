//go:generate go run testdata/generate_test_files.go testdata

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/kacebover/algorithm-runner/catalog"
	"github.com/kacebover/algorithm-runner/gui/controller"
	"github.com/kacebover/algorithm-runner/logging"
	"github.com/kacebover/algorithm-runner/runner"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches a subcommand and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printMainHelp(stdout)
		return exitOK
	}

	switch args[0] {
	case "list":
		return runListCommand(stdout)
	case "show":
		return runShowCommand(args[1:], stdout, stderr)
	case "run":
		return runRunCommand(args[1:], stdout, stderr)
	case "gui":
		LaunchGUI(stdout)
		return exitOK
	case "help", "--help", "-h":
		printMainHelp(stdout)
		return exitOK
	}

	fmt.Fprintf(stderr, "❌ Unknown command: %s\n\n", args[0])
	printMainHelp(stderr)
	return exitUsage
}

func printMainHelp(w io.Writer) {
	fmt.Fprintln(w, "🧮 Algorithm Runner")
	fmt.Fprintln(w, "===================")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  list    List the bundled algorithms and their Big-O labels")
	fmt.Fprintln(w, "  show    Print an algorithm's source")
	fmt.Fprintln(w, "  run     Execute an algorithm or a script file")
	fmt.Fprintln(w, "  gui     Show how to start the desktop app")
	fmt.Fprintln(w, "  help    Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  algorun show -algo \"Bubble Sort\"")
	fmt.Fprintln(w, "  algorun run -algo \"Linear Search\"")
	fmt.Fprintln(w, "  algorun run -file script.star [-algo NAME] [-max-steps N] [-verbose]")
}

// ═══════════════════════════════════════════════════════════════════════════
// LIST / SHOW
// ═══════════════════════════════════════════════════════════════════════════

func runListCommand(stdout io.Writer) int {
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tBIG-O")
	for _, e := range catalog.All() {
		fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Complexity)
	}
	_ = tw.Flush()
	return exitOK
}

func runShowCommand(args []string, stdout, stderr io.Writer) int {
	showCmd := flag.NewFlagSet("show", flag.ContinueOnError)
	showCmd.SetOutput(stderr)
	algo := showCmd.String("algo", "", "Algorithm name (see 'list')")

	if err := showCmd.Parse(args); err != nil {
		return exitUsage
	}

	entry, ok := catalog.Lookup(*algo)
	if !ok {
		fmt.Fprintf(stderr, "❌ Error: Unknown algorithm: %q\n", *algo)
		return exitUsage
	}

	fmt.Fprint(stdout, entry.Source)
	return exitOK
}

// ═══════════════════════════════════════════════════════════════════════════
// RUN
// ═══════════════════════════════════════════════════════════════════════════

func runRunCommand(args []string, stdout, stderr io.Writer) int {
	config := controller.LoadConfig()

	runCmd := flag.NewFlagSet("run", flag.ContinueOnError)
	runCmd.SetOutput(stderr)
	algo := runCmd.String("algo", "", "Algorithm name; with -file, enables the Big-O label when the file is unedited")
	file := runCmd.String("file", "", "Script file to execute")
	maxSteps := runCmd.Uint64("max-steps", config.MaxSteps, "Interpreter step budget (0 = unlimited)")
	verbose := runCmd.Bool("verbose", false, "Verbose logging to stderr")

	if err := runCmd.Parse(args); err != nil {
		return exitUsage
	}

	var source string
	switch {
	case *file != "":
		data, err := os.ReadFile(*file)
		if err != nil {
			fmt.Fprintf(stderr, "❌ Error: %v\n", err)
			return exitUsage
		}
		source = string(data)
	case *algo != "":
		entry, ok := catalog.Lookup(*algo)
		if !ok {
			fmt.Fprintf(stderr, "❌ Error: Unknown algorithm: %q\n", *algo)
			return exitUsage
		}
		source = entry.Source
	default:
		fmt.Fprintln(stderr, "❌ Error: Specify -algo or -file")
		runCmd.Usage()
		return exitUsage
	}

	logger := zap.NewNop()
	if *verbose {
		logger = logging.MustNew("debug", true)
	}
	defer func() { _ = logger.Sync() }()

	evalConfig := config.EvaluatorConfig()
	evalConfig.MaxSteps = *maxSteps

	r, err := runner.NewDefault(evalConfig, runner.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, "❌ Error: %v\n", err)
		return exitError
	}

	result := r.Execute(context.Background(), source, *algo)
	fmt.Fprint(stdout, result.Text())

	if result.Err != nil {
		return exitError
	}
	return exitOK
}
