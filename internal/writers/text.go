// internal/writers/text.go
package writers

import (
	"fmt"
	"io"
)

func init() {
	Register("text", writeText)
}

func writeText(w io.Writer, pattern string, offsets []int) error {
	if len(offsets) == 0 {
		_, err := fmt.Fprintf(w, "%s not found\n", pattern)
		return err
	}
	for _, pos := range offsets {
		if _, err := fmt.Fprintf(w, "found %s at %d\n", pattern, pos); err != nil {
			return err
		}
	}
	return nil
}
