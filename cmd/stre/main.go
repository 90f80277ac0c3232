// Command stre is a line-oriented regex filter: it compiles a pattern
// once, then reads lines from stdin and reports the leftmost match on
// each, mirroring the C ancestor's ret.c test harness.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pborman/getopt"

	"github.com/coregx/stre"
	"github.com/coregx/stre/internal/trace"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run implements the CLI over an explicit argv and explicit streams, so
// a test can drive it without touching the process's real os.Args or
// standard streams. args[0] is the program name, exactly as os.Args is
// shaped.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	program := "stre"
	if len(args) > 0 {
		program = args[0]
	}

	fs := getopt.New()
	var verbose, compileOnly, noOptimise bool
	fs.BoolVarLong(&verbose, "verbose", 'v', "enable debug tracing")
	fs.BoolVarLong(&compileOnly, "compile-only", 'n', "compile only; do not match")
	fs.BoolVarLong(&noOptimise, "no-optimise", 'o', "disable the optimiser")
	fs.SetParameters("pattern")

	if err := fs.Getopt(args, func(o getopt.Option) bool { return true }); err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", program, err)
		fs.PrintUsage(stderr)
		return 1
	}

	patternArgs := fs.Args()
	if len(patternArgs) == 0 {
		fmt.Fprintf(stderr, "%s: regex required\n", program)
		return 1
	}
	pattern := patternArgs[0]

	var tracer trace.Tracer
	if verbose {
		tracer = trace.NewPretty(stderr)
	}

	opts := stre.DefaultOptions()
	opts.Optimise = !noOptimise
	opts.Tracer = tracer

	re, err := stre.CompileWithOptions(pattern, opts)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", program, err)
		return 1
	}

	if compileOnly {
		return 0
	}

	scanner := bufio.NewScanner(stdin)
	out := bufio.NewWriter(stdout)
	defer out.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		loc, err := re.FindStringIndexErr(line)
		switch {
		case err != nil:
			fmt.Fprintf(stderr, "%s: %s\n", program, err)
		case loc != nil:
			fmt.Fprintf(out, "Found: %s\n", line[loc.Start:loc.End])
		}
	}
	return 0
}
