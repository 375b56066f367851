// ABOUTME: Collaborator contracts for the paging controller
// ABOUTME: Content provider, transition observer and host viewport interfaces

package pager

// Provider supplies page content. H is an opaque, provider-defined handle.
type Provider[H any] interface {
	// PageCount returns the total number of pages, possibly 0
	PageCount() int
	// ContentForPage is only called for an index in [0, PageCount) that has
	// no materialized handle. It must return a usable handle.
	ContentForPage(index int) H
}

// Releaser is optionally implemented by a Provider that wants to know when a
// handle leaves the load window
type Releaser[H any] interface {
	ReleasePage(index int, handle H)
}

// Observer receives page transition notifications.
//
// Ordering depends on the path that caused the transition:
//   - GoToNext, GoToPrevious and GoToPage: WillLeavePage(old) then DidArrivePage(new)
//   - drag crossings in OnScrollPositionChanged: DidArrivePage(new) then WillLeavePage(old)
//
// In both cases CurrentPage still holds the old value while the callbacks run.
type Observer interface {
	WillLeavePage(index int)
	DidArrivePage(index int)
}

// Viewport is the host scroll surface the controller drives
type Viewport[H any] interface {
	// Bounds returns the size of one page (the visible viewport)
	Bounds() Geometry
	// SetContentExtent sets the total scrollable content size
	SetContentExtent(width, height float64)
	// ScrollTo moves the visible origin to offset. A new call supersedes any
	// in-flight animated scroll.
	ScrollTo(offset float64, animated bool)
	// Attach places a materialized handle at horizontal position x
	Attach(index int, handle H, x float64)
	// Detach removes a previously attached handle
	Detach(index int, handle H)
}

// Dependencies holds the collaborators of a Controller.
// The controller keeps plain references and owns none of them.
type Dependencies[H any] struct {
	Provider Provider[H]
	Viewport Viewport[H]
	Observer Observer                     // Optional
	Debugf   func(string, ...interface{}) // Optional
}

type nopObserver struct{}

func (nopObserver) WillLeavePage(int) {}
func (nopObserver) DidArrivePage(int) {}
