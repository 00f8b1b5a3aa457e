// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"fastagrep-core/genome"
	"fastagrep-core/search"
	"fastagrep/internal/cli"
	"fastagrep/internal/version"
	"fastagrep/internal/writers"
)

// RunContext drives one CLI invocation: parse, load (timed), search (timed),
// report. Exit codes: 0 ok, 1 load/search failure, 2 usage error, 3 output
// failure; an empty match set exits with --no-match-exit-code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("fastagrep")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flush(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "fastagrep version %s\n", version.Version)
		return flush(outw, stderr, 0)
	}

	loadStart := time.Now()
	store, err := genome.LoadFile(opts.Path)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	if !opts.Quiet {
		_, _ = fmt.Fprintf(stderr, "loaded %d bases in %v\n", store.ValidLen(), time.Since(loadStart))
	}

	// Load-only mode: a bare file path exercises (and times) the loader.
	if opts.Pattern == "" {
		return flush(outw, stderr, 0)
	}

	// The store is upper-cased at load; normalize the pattern to match.
	pattern := strings.ToUpper(opts.Pattern)

	searchStart := time.Now()
	matcher := search.New(search.Config{Workers: opts.Threads})
	offsets, err := matcher.FindAll(parent, store, []byte(pattern))
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	if !opts.Quiet {
		_, _ = fmt.Fprintf(stderr, "searched in %v\n", time.Since(searchStart))
	}

	if err := writers.Write(opts.Output, outw, pattern, offsets); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	code := 0
	if len(offsets) == 0 {
		code = opts.NoMatchExitCode
	}
	return flush(outw, stderr, code)
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
