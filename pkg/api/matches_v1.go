// Package api defines the stable, versioned output schemas emitted by
// fastagrep. Downstream tooling may rely on these field names.
package api

// MatchV1 is one pattern occurrence as emitted in JSONL output.
// Pos is the 0-based start offset within the loaded sequence.
type MatchV1 struct {
	Pattern string `json:"pattern"`
	Pos     int    `json:"pos"`
}
