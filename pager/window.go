// ABOUTME: Load window and page geometry helpers for the paging controller
// ABOUTME: Maps page indices to scroll offsets and back

package pager

import "math"

// Geometry is the size of one page in viewport units
type Geometry struct {
	Width  float64
	Height float64
}

// OffsetFor returns the horizontal scroll offset at which page index is aligned
func (g Geometry) OffsetFor(index int) float64 {
	return g.Width * float64(index)
}

// CenterCrossed returns the page whose center the offset has passed:
// floor((offset - width/2) / width) + 1
// A zero or negative width maps every offset to page 0.
func (g Geometry) CenterCrossed(offset float64) int {
	if g.Width <= 0 {
		return 0
	}

	return int(math.Floor((offset-g.Width/2)/g.Width)) + 1
}

// LoadWindow returns {p-1, p, p+1} intersected with [0, pageCount), ascending
func LoadWindow(p, pageCount int) []int {
	window := make([]int, 0, 3)

	for i := p - 1; i <= p+1; i++ {
		if InRange(i, pageCount) {
			window = append(window, i)
		}
	}

	return window
}

// InRange reports whether index addresses a page in [0, pageCount)
func InRange(index, pageCount int) bool {
	return index >= 0 && index < pageCount
}

// inWindow reports whether index is adjacent to (or equal to) p
func inWindow(index, p int) bool {
	return index >= p-1 && index <= p+1
}
