// core/search/scan.go
package search

import "bytes"

// scanRange finds every start offset s in [lo, hi) where pattern occurs in
// buf[:valid], using bytes.Index jump scanning. The read window extends to
// hi+len(pattern)-1 (clamped to valid) so an occurrence straddling Hi is
// still seen, but a hit is kept only when it starts inside [lo, hi) — the
// adjacent region owns anything later. Matches may overlap.
func scanRange(buf, pattern []byte, lo, hi, valid int) []int {
	pl := len(pattern)
	if pl == 0 || lo >= hi {
		return nil
	}
	end := hi + pl - 1
	if end > valid {
		end = valid
	}
	window := buf[lo:end]

	var out []int
	for i := 0; ; {
		j := bytes.Index(window[i:], pattern)
		if j < 0 {
			break
		}
		pos := lo + i + j
		if pos >= hi {
			break
		}
		out = append(out, pos)
		i += j + 1
	}
	return out
}
