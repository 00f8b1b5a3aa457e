// core/search/region.go
package search

// Region is a half-open [Lo, Hi) slice of the valid buffer owned by one
// worker. Ownership is by match start offset; the scan window may read past
// Hi so patterns straddling the boundary are still seen.
type Region struct {
	Lo, Hi int
}

// Len returns the number of start offsets the region owns.
func (r Region) Len() int { return r.Hi - r.Lo }

// Partition splits [0, n) into w contiguous regions. The last region absorbs
// the remainder when n is not divisible by w, so the tail bytes are never
// dropped. w <= 0 is treated as 1. Regions may be empty when w > n.
func Partition(n, w int) []Region {
	if n <= 0 {
		return nil
	}
	if w <= 0 {
		w = 1
	}
	chunk := n / w
	regions := make([]Region, w)
	for i := range regions {
		regions[i] = Region{Lo: i * chunk, Hi: (i + 1) * chunk}
	}
	regions[w-1].Hi = n
	return regions
}
