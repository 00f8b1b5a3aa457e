// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"fastagrep/internal/cliutil"
	"fastagrep/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Positional input
	Path    string // FASTA file, or '-' for stdin
	Pattern string // empty = load-only mode

	// Performance
	Threads int

	// Output
	Output          string
	Quiet           bool
	NoMatchExitCode int

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: parallel exact-pattern search over FASTA sequences

Version: %s

Usage: %s [flags] <sequences.fasta> [pattern]

The file is loaded once into memory and scanned by concurrent workers.
With no pattern, the file is only loaded (and timed). Use '-' to read
FASTA from stdin; gzip input is detected automatically.

Flags:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.StringVar(&opt.Output, "output", "text", "output format: text | jsonl [text]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress load/search timing diagnostics [false]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 0, "exit code when the pattern is not found [0]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	switch len(posArgs) {
	case 0:
		return opt, errors.New("a FASTA file is required")
	case 1:
		opt.Path = posArgs[0]
	case 2:
		opt.Path, opt.Pattern = posArgs[0], posArgs[1]
	default:
		return opt, fmt.Errorf("unexpected extra arguments: %v", posArgs[2:])
	}

	// Validation
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.Output != "text" && opt.Output != "jsonl" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
