// core/genome/store.go
package genome

// Store holds a genomic sequence in a byte buffer allocated once at load
// time. The buffer is sized for the worst case before the real sequence
// length is known, so only the first ValidLen bytes carry data; the tail is
// padding and must never be scanned.
//
// A Store is never written after construction, which is what makes
// unsynchronized concurrent reads by search workers safe.
type Store struct {
	data  []byte
	valid int
}

// New wraps buf as a Store with valid meaningful bytes.
// valid is clamped into [0, len(buf)].
func New(buf []byte, valid int) *Store {
	if valid < 0 {
		valid = 0
	}
	if valid > len(buf) {
		valid = len(buf)
	}
	return &Store{data: buf, valid: valid}
}

// Bytes returns the underlying buffer, padding included. Callers must treat
// it as read-only.
func (s *Store) Bytes() []byte { return s.data }

// ValidLen reports how many leading bytes of Bytes hold sequence data.
func (s *Store) ValidLen() int { return s.valid }
