// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
)

// MatchWriter renders a completed match set in one output format.
type MatchWriter func(w io.Writer, pattern string, offsets []int) error

var matchWriters = map[string]MatchWriter{}

// Register installs a writer for a format name (idempotent, last wins).
// Called from init() blocks in the per-format files.
func Register(format string, fn MatchWriter) { matchWriters[format] = fn }

// Write dispatches to the registered writer for format.
func Write(format string, w io.Writer, pattern string, offsets []int) error {
	fn, ok := matchWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, pattern, offsets)
}
