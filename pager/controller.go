// ABOUTME: PageWindowController keeping a three-page load window in sync with scrolling
// ABOUTME: Handles programmatic navigation and page-boundary crossings while dragging

// Package pager implements a horizontally paged viewport controller.
// At any time only the current page and its direct neighbours are
// materialized; pages leaving that window are detached and released.
package pager

import "sort"

// Controller owns current-page state and the set of materialized pages.
// It is not safe for concurrent use: all calls must come from the single
// event context that delivers the host's scroll and navigation events.
type Controller[H any] struct {
	provider Provider[H]
	viewport Viewport[H]
	observer Observer
	debugf   func(string, ...interface{})

	current      int
	pageCount    int
	geometry     Geometry
	dragging     bool
	materialized map[int]H
}

// New creates a controller. Call Configure before any navigation.
func New[H any](deps Dependencies[H]) *Controller[H] {
	c := &Controller[H]{
		provider:     deps.Provider,
		viewport:     deps.Viewport,
		observer:     deps.Observer,
		debugf:       deps.Debugf,
		materialized: make(map[int]H),
	}

	if c.observer == nil {
		c.observer = nopObserver{}
	}

	if c.debugf == nil {
		c.debugf = func(string, ...interface{}) {}
	}

	return c
}

// Configure starts a fresh configuration at initialPage.
// All materialized pages are released, page count and geometry are re-read,
// the load window is established and the viewport jumps (without animation)
// to initialPage. No transition notifications fire.
func (c *Controller[H]) Configure(initialPage int) {
	for index, handle := range c.materialized {
		c.release(index, handle)
	}

	c.pageCount = c.provider.PageCount()
	c.geometry = c.viewport.Bounds()
	c.current = initialPage

	c.viewport.SetContentExtent(c.geometry.Width*float64(c.pageCount), c.geometry.Height)

	c.debugf("[PAGER] Configure: page=%d count=%d width=%.0f", initialPage, c.pageCount, c.geometry.Width)

	c.showPage(initialPage, false)
}

// EnsureLoaded materializes page index if it is in range and not yet loaded.
// Out-of-range indices and repeated requests are silent no-ops.
func (c *Controller[H]) EnsureLoaded(index int) {
	if !InRange(index, c.pageCount) {
		return
	}

	if _, ok := c.materialized[index]; ok {
		return
	}

	handle := c.provider.ContentForPage(index)
	c.materialized[index] = handle
	c.viewport.Attach(index, handle, c.geometry.OffsetFor(index))

	c.debugf("[PAGER] Loaded page %d", index)
}

// GoToNext moves to CurrentPage+1. It is a no-op on the last page.
func (c *Controller[H]) GoToNext(animated bool) {
	c.step(c.current+1, animated)
}

// GoToPrevious moves to CurrentPage-1. It is a no-op on the first page.
func (c *Controller[H]) GoToPrevious(animated bool) {
	c.step(c.current-1, animated)
}

func (c *Controller[H]) step(target int, animated bool) {
	if !InRange(target, c.pageCount) {
		return
	}

	c.observer.WillLeavePage(c.current)
	c.showPage(target, animated)
	c.observer.DidArrivePage(target)
	c.current = target
}

// GoToPage moves to index. The index is not validated: callers must pass a
// value in [0, PageCount). The window and scroll position are updated before
// either notification fires.
func (c *Controller[H]) GoToPage(index int, animated bool) {
	c.showPage(index, animated)
	c.observer.WillLeavePage(c.current)
	c.observer.DidArrivePage(index)
	c.current = index
}

// OnDragBegin marks the start of an interactive drag
func (c *Controller[H]) OnDragBegin() {
	c.dragging = true
}

// OnDragSettle marks the end of a drag, including any settle animation
func (c *Controller[H]) OnDragSettle() {
	c.dragging = false
}

// OnScrollPositionChanged classifies a scroll offset while dragging.
// When the offset has passed the center of another page, DidArrivePage(new)
// fires before WillLeavePage(old). The load window follows the candidate page
// on every call. Outside a drag the call is ignored.
//
// The candidate page is clamped to [0, PageCount), so an offset past either
// end of the strip settles on the first or last page and fires nothing.
// Hosts that let the viewport overscroll see no arrival for the phantom page
// beyond the range.
func (c *Controller[H]) OnScrollPositionChanged(offset float64) {
	if !c.dragging {
		return
	}

	page := c.PageAt(offset)
	if page != c.current {
		c.debugf("[PAGER] Drag crossed from page %d to %d (offset %.1f)", c.current, page, offset)
		c.observer.DidArrivePage(page)
		c.observer.WillLeavePage(c.current)
	}

	c.current = page
	c.refreshWindow(page)
}

// PageAt returns the page whose center offset has passed, clamped to the
// configured page range
func (c *Controller[H]) PageAt(offset float64) int {
	page := c.geometry.CenterCrossed(offset)
	if c.pageCount == 0 {
		return page
	}

	return max(0, min(page, c.pageCount-1))
}

// CurrentPage returns the page the controller believes the viewport is on
func (c *Controller[H]) CurrentPage() int {
	return c.current
}

// PageCount returns the page count read at the last Configure
func (c *Controller[H]) PageCount() int {
	return c.pageCount
}

// Geometry returns the page geometry read at the last Configure
func (c *Controller[H]) Geometry() Geometry {
	return c.geometry
}

// Dragging reports whether a drag is in progress
func (c *Controller[H]) Dragging() bool {
	return c.dragging
}

// Materialized returns the loaded page indices in ascending order
func (c *Controller[H]) Materialized() []int {
	indices := make([]int, 0, len(c.materialized))
	for index := range c.materialized {
		indices = append(indices, index)
	}

	sort.Ints(indices)

	return indices
}

// Handle returns the materialized handle for index, if any
func (c *Controller[H]) Handle(index int) (H, bool) {
	handle, ok := c.materialized[index]
	return handle, ok
}

// showPage refreshes the window around page and scrolls to it
func (c *Controller[H]) showPage(page int, animated bool) {
	c.refreshWindow(page)
	c.viewport.ScrollTo(c.geometry.OffsetFor(page), animated)
}

// refreshWindow loads LoadWindow(page) and releases everything outside it
func (c *Controller[H]) refreshWindow(page int) {
	c.EnsureLoaded(page - 1)
	c.EnsureLoaded(page)
	c.EnsureLoaded(page + 1)

	for index, handle := range c.materialized {
		if !inWindow(index, page) {
			c.release(index, handle)
		}
	}
}

func (c *Controller[H]) release(index int, handle H) {
	delete(c.materialized, index)
	c.viewport.Detach(index, handle)

	if r, ok := c.provider.(Releaser[H]); ok {
		r.ReleasePage(index, handle)
	}

	c.debugf("[PAGER] Released page %d", index)
}
