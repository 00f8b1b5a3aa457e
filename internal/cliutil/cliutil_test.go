package cliutil

import (
	"flag"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	fs.BoolVar(&b, "quiet", false, "")
	var n int
	fs.IntVar(&n, "threads", 0, "")

	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--quiet", "pos1", "--", "pos2"})
	if len(flagArgs) != 1 || len(posArgs) != 2 || posArgs[0] != "pos1" || posArgs[1] != "pos2" {
		t.Fatalf("unexpected split: %v / %v", flagArgs, posArgs)
	}

	// Value flags after positionals consume their argument.
	flagArgs, posArgs = SplitFlagsAndPositionals(fs, []string{"ref.fa", "ACGT", "--threads", "4"})
	if len(flagArgs) != 2 || flagArgs[1] != "4" {
		t.Fatalf("value flag not consumed: %v", flagArgs)
	}
	if len(posArgs) != 2 || posArgs[0] != "ref.fa" || posArgs[1] != "ACGT" {
		t.Fatalf("unexpected positionals: %v", posArgs)
	}

	// '-' is stdin, never a flag.
	_, posArgs = SplitFlagsAndPositionals(fs, []string{"-", "AA"})
	if len(posArgs) != 2 || posArgs[0] != "-" {
		t.Fatalf("stdin positional lost: %v", posArgs)
	}
}
