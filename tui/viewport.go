// ABOUTME: Horizontal page strip: the scroll surface the pager controller drives
// ABOUTME: Tracks offset, content extent, attached cards and eased scroll animation

package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"playlist-pager/pager"
)

// PageStrip is a horizontally scrollable row of cards, one page wide.
// It implements pager.Viewport[*Card].
type PageStrip struct {
	width  int // Visible width in cells (one page)
	height int // Visible height in lines

	extentWidth float64 // Total content width
	offset      float64 // Visible origin

	attached map[int]*Card

	// Scroll animation
	frames    int // Frames per animated scroll
	animating bool
	from      float64
	target    float64
	frame     int
	animGen   int  // Incremented per animated scroll; stale ticks are dropped
	needsTick bool // A new animation started and wants its first frame
}

// NewPageStrip creates a strip animating over frames steps
func NewPageStrip(frames int) *PageStrip {
	return &PageStrip{
		frames:   max(1, frames),
		attached: make(map[int]*Card),
	}
}

// SetSize updates the visible size (one page)
func (s *PageStrip) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Bounds implements pager.Viewport
func (s *PageStrip) Bounds() pager.Geometry {
	return pager.Geometry{Width: float64(s.width), Height: float64(s.height)}
}

// SetContentExtent implements pager.Viewport
func (s *PageStrip) SetContentExtent(width, _ float64) {
	s.extentWidth = width
	s.offset = s.clamp(s.offset)
}

// ScrollTo implements pager.Viewport. An animated scroll replaces any
// animation in flight, starting from the current offset.
func (s *PageStrip) ScrollTo(offset float64, animated bool) {
	offset = s.clamp(offset)

	if !animated || offset == s.offset {
		s.StopAnimation()
		s.offset = offset

		return
	}

	s.from = s.offset
	s.target = offset
	s.frame = 0
	s.animating = true
	s.animGen++
	s.needsTick = true
}

// Attach implements pager.Viewport
func (s *PageStrip) Attach(index int, card *Card, _ float64) {
	s.attached[index] = card
}

// Detach implements pager.Viewport
func (s *PageStrip) Detach(index int, card *Card) {
	if s.attached[index] == card {
		delete(s.attached, index)
	}
}

// Offset returns the visible origin
func (s *PageStrip) Offset() float64 {
	return s.offset
}

// SetOffset jumps to offset (clamped), cancelling any animation
func (s *PageStrip) SetOffset(offset float64) {
	s.StopAnimation()
	s.offset = s.clamp(offset)
}

// StopAnimation freezes the strip at its current offset
func (s *PageStrip) StopAnimation() {
	s.animating = false
	s.needsTick = false
}

// Animating reports whether an animated scroll is in progress
func (s *PageStrip) Animating() bool {
	return s.animating
}

// TakeTickRequest reports (once) that a new animation needs its first
// frame, returning the animation generation to tag frames with
func (s *PageStrip) TakeTickRequest() (int, bool) {
	if !s.needsTick {
		return 0, false
	}

	s.needsTick = false

	return s.animGen, true
}

// Step advances the animation of generation gen by one frame.
// It returns false when gen is stale or the strip is not animating.
func (s *PageStrip) Step(gen int) bool {
	if !s.animating || gen != s.animGen {
		return false
	}

	s.frame++
	if s.frame >= s.frames {
		s.offset = s.target
		s.animating = false

		return true
	}

	t := float64(s.frame) / float64(s.frames)
	eased := 1 - math.Pow(1-t, 3)
	s.offset = s.from + (s.target-s.from)*eased

	return true
}

// Attached returns the card attached at index
func (s *PageStrip) Attached(index int) (*Card, bool) {
	card, ok := s.attached[index]
	return card, ok
}

// maxOffset is the largest origin that still shows a full page
func (s *PageStrip) maxOffset() float64 {
	return math.Max(0, s.extentWidth-float64(s.width))
}

func (s *PageStrip) clamp(offset float64) float64 {
	return math.Max(0, math.Min(offset, s.maxOffset()))
}

// View renders the visible window [offset, offset+width) of the strip.
// Columns without an attached card render blank.
func (s *PageStrip) View() string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}

	origin := int(math.Round(s.offset))
	first := origin / s.width
	last := (origin + s.width - 1) / s.width

	rows := make([]strings.Builder, s.height)

	for page := first; page <= last; page++ {
		pageStart := page * s.width
		left := max(0, origin-pageStart)
		right := min(s.width, origin+s.width-pageStart)

		if right <= left {
			continue
		}

		card, ok := s.attached[page]
		if !ok {
			blank := strings.Repeat(" ", right-left)
			for row := range rows {
				rows[row].WriteString(blank)
			}

			continue
		}

		lines := card.Lines()
		for row := range rows {
			if row < len(lines) {
				rows[row].WriteString(ansi.Cut(lines[row], left, right))
			} else {
				rows[row].WriteString(strings.Repeat(" ", right-left))
			}
		}
	}

	out := make([]string, len(rows))
	for i := range rows {
		out[i] = rows[i].String()
	}

	return strings.Join(out, "\n")
}
