// core/genome/load.go
package genome

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
)

// LoadFile reads a FASTA file into a Store. Header lines are skipped,
// sequence lines are concatenated and upper-cased. For plain files the
// buffer is pre-allocated at the file's size — headers and newlines make
// the sequence strictly smaller, so the fill never reallocates and the
// unused tail stays as padding behind ValidLen.
//
// gzip input is auto-detected; "-" reads FASTA from stdin. Files too large
// for an int-indexed buffer are rejected rather than truncated.
func LoadFile(path string) (*Store, error) {
	if path == "-" {
		return LoadReader(os.Stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("genome: %w", err)
	}
	if rc, gerr := openGzip(path, fh); gerr != nil {
		_ = fh.Close()
		return nil, fmt.Errorf("genome: open %s: %w", path, gerr)
	} else if rc != nil {
		// Decompressed size is unknown upfront; fall back to a growing buffer.
		defer func() { _ = rc.Close() }()
		return LoadReader(rc)
	}
	defer func() { _ = fh.Close() }()

	st, err := fh.Stat()
	if err != nil {
		return nil, fmt.Errorf("genome: stat %s: %w", path, err)
	}
	size := st.Size()
	if size > int64(math.MaxInt) {
		return nil, fmt.Errorf("genome: %s is too big (%d bytes) to hold in a single buffer", path, size)
	}

	buf := make([]byte, int(size))
	seq, err := appendSequence(buf[:0], fh)
	if err != nil {
		return nil, fmt.Errorf("genome: read %s: %w", path, err)
	}
	return New(buf, len(seq)), nil
}

// LoadReader reads FASTA from r into a Store backed by a growing buffer.
// Used for stdin and compressed input where the final size is unknown.
func LoadReader(r io.Reader) (*Store, error) {
	seq, err := appendSequence(make([]byte, 0, 1<<20), r)
	if err != nil {
		return nil, fmt.Errorf("genome: read: %w", err)
	}
	return New(seq, len(seq)), nil
}

// appendSequence scans FASTA lines from r and appends normalized sequence
// bytes to dst: '>' headers and blank lines are dropped, a-z upper-cased.
func appendSequence(dst []byte, r io.Reader) ([]byte, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == '>' {
			continue
		}
		for _, c := range line {
			if c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			dst = append(dst, c)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	return dst, nil
}
