// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"fastagrep/pkg/api"
)

func init() {
	Register("jsonl", writeJSONL)
}

// writeJSONL streams each occurrence as one api.MatchV1 JSON line.
// An empty match set produces no output; scripts should check the
// exit code (see --no-match-exit-code).
func writeJSONL(w io.Writer, pattern string, offsets []int) error {
	enc := json.NewEncoder(w)
	for _, pos := range offsets {
		if err := enc.Encode(api.MatchV1{Pattern: pattern, Pos: pos}); err != nil {
			return err
		}
	}
	return nil
}
