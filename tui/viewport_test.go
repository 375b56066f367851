// ABOUTME: Tests for the PageStrip scroll surface
// ABOUTME: Verifies clamping, eased animation, stale frames and window slicing

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func newTestStrip(frames, width, height, pages int) *PageStrip {
	s := NewPageStrip(frames)
	s.SetSize(width, height)
	s.SetContentExtent(float64(width*pages), float64(height))

	return s
}

func TestPageStrip_Bounds(t *testing.T) {
	s := newTestStrip(4, 40, 10, 3)

	b := s.Bounds()
	if b.Width != 40 || b.Height != 10 {
		t.Errorf("Bounds() = %+v, want 40x10", b)
	}
}

func TestPageStrip_ScrollToClamps(t *testing.T) {
	s := newTestStrip(4, 10, 5, 3)

	tests := []struct {
		name   string
		offset float64
		want   float64
	}{
		{"inside", 10, 10},
		{"last page", 20, 20},
		{"past end", 100, 20},
		{"negative", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.ScrollTo(tt.offset, false)
			if got := s.Offset(); got != tt.want {
				t.Errorf("Offset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPageStrip_ExtentShrinkClampsOffset(t *testing.T) {
	s := newTestStrip(4, 10, 5, 3)
	s.ScrollTo(20, false)

	s.SetContentExtent(10, 5)

	if got := s.Offset(); got != 0 {
		t.Errorf("Offset() after shrink = %v, want 0", got)
	}
}

func TestPageStrip_Animation(t *testing.T) {
	s := newTestStrip(4, 10, 5, 3)

	s.ScrollTo(10, true)

	if !s.Animating() {
		t.Fatal("Animating() = false after animated ScrollTo")
	}

	if s.Offset() != 0 {
		t.Errorf("Offset() = %v before first frame, want 0", s.Offset())
	}

	gen, ok := s.TakeTickRequest()
	if !ok {
		t.Fatal("TakeTickRequest() reported no request")
	}

	if _, again := s.TakeTickRequest(); again {
		t.Error("TakeTickRequest() reported the same request twice")
	}

	if s.Step(gen - 1) {
		t.Error("Step() accepted a stale generation")
	}

	prev := 0.0
	for i := 0; i < 3; i++ {
		if !s.Step(gen) {
			t.Fatalf("Step() frame %d returned false", i+1)
		}

		if s.Offset() <= prev || s.Offset() >= 10 {
			t.Errorf("frame %d offset = %v, want in (%v, 10)", i+1, s.Offset(), prev)
		}

		prev = s.Offset()
	}

	if !s.Step(gen) {
		t.Fatal("final Step() returned false")
	}

	if s.Animating() {
		t.Error("Animating() = true after final frame")
	}

	if s.Offset() != 10 {
		t.Errorf("Offset() = %v after final frame, want 10", s.Offset())
	}

	if s.Step(gen) {
		t.Error("Step() returned true with no animation running")
	}
}

func TestPageStrip_NewAnimationSupersedesOld(t *testing.T) {
	s := newTestStrip(4, 10, 5, 3)

	s.ScrollTo(10, true)
	first, _ := s.TakeTickRequest()
	s.Step(first)

	s.ScrollTo(20, true)
	second, ok := s.TakeTickRequest()

	if !ok || second == first {
		t.Fatalf("second animation gen = %d (ok=%v), want new generation", second, ok)
	}

	if s.Step(first) {
		t.Error("Step() with superseded generation advanced the strip")
	}

	for s.Animating() {
		s.Step(second)
	}

	if s.Offset() != 20 {
		t.Errorf("Offset() = %v, want 20", s.Offset())
	}
}

func TestPageStrip_ScrollToSameOffsetDoesNotAnimate(t *testing.T) {
	s := newTestStrip(4, 10, 5, 3)
	s.ScrollTo(10, false)

	s.ScrollTo(10, true)

	if s.Animating() {
		t.Error("Animating() = true for a scroll to the current offset")
	}

	if _, ok := s.TakeTickRequest(); ok {
		t.Error("TakeTickRequest() reported a request for a no-op scroll")
	}
}

func TestPageStrip_SetOffsetCancelsAnimation(t *testing.T) {
	s := newTestStrip(4, 10, 5, 3)
	s.ScrollTo(20, true)

	s.SetOffset(7)

	if s.Animating() {
		t.Error("Animating() = true after SetOffset")
	}

	if s.Offset() != 7 {
		t.Errorf("Offset() = %v, want 7", s.Offset())
	}
}

func TestPageStrip_AttachDetach(t *testing.T) {
	s := newTestStrip(4, 20, 8, 3)
	a := newCard(0, Page{Title: "A"}, nil, 20, 8)
	b := newCard(0, Page{Title: "B"}, nil, 20, 8)

	s.Attach(0, a, 0)

	if got, ok := s.Attached(0); !ok || got != a {
		t.Fatal("Attached(0) did not return the attached card")
	}

	// Detaching a different card leaves the slot alone
	s.Detach(0, b)
	if _, ok := s.Attached(0); !ok {
		t.Error("Detach() with a foreign card removed the attached card")
	}

	s.Detach(0, a)
	if _, ok := s.Attached(0); ok {
		t.Error("Attached(0) still present after Detach")
	}
}

func TestPageStrip_ViewDimensions(t *testing.T) {
	s := newTestStrip(4, 20, 8, 3)
	s.Attach(0, newCard(0, Page{Title: "First", Body: "hello"}, nil, 20, 8), 0)
	s.Attach(1, newCard(1, Page{Title: "Second"}, nil, 20, 8), 20)

	for _, offset := range []float64{0, 7, 20, 33} {
		s.SetOffset(offset)

		rows := strings.Split(s.View(), "\n")
		if len(rows) != 8 {
			t.Fatalf("offset %v: View() has %d rows, want 8", offset, len(rows))
		}

		for i, row := range rows {
			if w := ansi.StringWidth(row); w != 20 {
				t.Errorf("offset %v row %d width = %d, want 20", offset, i, w)
			}
		}
	}
}

func TestPageStrip_ViewShowsCurrentCard(t *testing.T) {
	s := newTestStrip(4, 20, 8, 3)
	s.Attach(1, newCard(1, Page{Title: "Second"}, nil, 20, 8), 20)
	s.SetOffset(20)

	if view := ansi.Strip(s.View()); !strings.Contains(view, "Second") {
		t.Errorf("View() at page 1 does not show its title:\n%s", view)
	}
}

func TestPageStrip_ViewBlankWhereNothingAttached(t *testing.T) {
	s := newTestStrip(4, 20, 8, 3)
	s.Attach(0, newCard(0, Page{Title: "First"}, nil, 20, 8), 0)

	// Halfway between page 0 and the unattached page 1
	s.SetOffset(10)

	for i, row := range strings.Split(s.View(), "\n") {
		right := ansi.Strip(ansi.Cut(row, 10, 20))
		if strings.TrimSpace(right) != "" {
			t.Errorf("row %d: unattached half = %q, want blank", i, right)
		}
	}
}

func TestPageStrip_ViewEmptySize(t *testing.T) {
	s := NewPageStrip(4)

	if got := s.View(); got != "" {
		t.Errorf("View() with zero size = %q, want empty", got)
	}
}
