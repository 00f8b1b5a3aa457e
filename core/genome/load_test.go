// core/genome/load_test.go
package genome

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
)

const plain = `>seq1 description
acgtACGT
ttaa
>seq2
GGCC
`

const wantSeq = "ACGTACGTTTAAGGCC"

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// writeGz creates a gzipped FASTA file with provided data, returns the file path.
func writeGz(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), fmt.Sprintf("test-%d.fa.gz", time.Now().UnixNano()))
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestLoadFilePlain(t *testing.T) {
	path := writeFile(t, "t.fa", plain)

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := string(s.Bytes()[:s.ValidLen()]); got != wantSeq {
		t.Fatalf("sequence %q, want %q", got, wantSeq)
	}
	// Worst-case pre-allocation: buffer is file-sized, sequence is smaller.
	if len(s.Bytes()) != len(plain) {
		t.Errorf("buffer len %d, want file size %d", len(s.Bytes()), len(plain))
	}
	if s.ValidLen() >= len(s.Bytes()) {
		t.Errorf("expected padding behind ValidLen (%d of %d)", s.ValidLen(), len(s.Bytes()))
	}
}

func TestLoadFileGzip(t *testing.T) {
	path := writeGz(t, plain)

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load gz: %v", err)
	}
	if got := string(s.Bytes()[:s.ValidLen()]); got != wantSeq {
		t.Fatalf("gzip sequence %q, want %q", got, wantSeq)
	}
}

func TestLoadFileCRLF(t *testing.T) {
	path := writeFile(t, "crlf.fa", ">s\r\nAC\r\ngt\r\n")

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := string(s.Bytes()[:s.ValidLen()]); got != "ACGT" {
		t.Fatalf("sequence %q, want ACGT", got)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadReader(t *testing.T) {
	s, err := LoadReader(strings.NewReader(plain))
	if err != nil {
		t.Fatalf("load reader: %v", err)
	}
	if got := string(s.Bytes()[:s.ValidLen()]); got != wantSeq {
		t.Fatalf("sequence %q, want %q", got, wantSeq)
	}
}

func TestLoadFileEmpty(t *testing.T) {
	path := writeFile(t, "empty.fa", "")

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.ValidLen() != 0 {
		t.Fatalf("ValidLen=%d, want 0", s.ValidLen())
	}
}
