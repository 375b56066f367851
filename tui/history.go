// ABOUTME: Back/forward history of visited pages
// ABOUTME: Jumps push the page left behind; stacks are bounded to a maximum size

package tui

// History manages back/forward stacks of page indices with a maximum size limit
type History struct {
	back    []int
	forward []int
	maxSize int
}

// NewHistory creates a history keeping at most maxSize pages per direction
func NewHistory(maxSize int) *History {
	return &History{maxSize: max(1, maxSize)}
}

// Push records page as the page left by a jump.
// Clears the forward stack (a new jump starts a new branch).
func (h *History) Push(page int) {
	h.back = pushBounded(h.back, page, h.maxSize)
	h.forward = h.forward[:0]
}

// Back returns the page to return to, remembering current for Forward.
// Returns false if there is nothing to go back to.
func (h *History) Back(current int) (int, bool) {
	if len(h.back) == 0 {
		return 0, false
	}

	page := h.back[len(h.back)-1]
	h.back = h.back[:len(h.back)-1]
	h.forward = pushBounded(h.forward, current, h.maxSize)

	return page, true
}

// Forward undoes a Back, remembering current for the next Back
func (h *History) Forward(current int) (int, bool) {
	if len(h.forward) == 0 {
		return 0, false
	}

	page := h.forward[len(h.forward)-1]
	h.forward = h.forward[:len(h.forward)-1]
	h.back = pushBounded(h.back, current, h.maxSize)

	return page, true
}

// BackSize returns the number of pages on the back stack
func (h *History) BackSize() int {
	return len(h.back)
}

// ForwardSize returns the number of pages on the forward stack
func (h *History) ForwardSize() int {
	return len(h.forward)
}

// Clear empties both stacks
func (h *History) Clear() {
	h.back = h.back[:0]
	h.forward = h.forward[:0]
}

func pushBounded(stack []int, page, maxSize int) []int {
	stack = append(stack, page)
	if len(stack) > maxSize {
		stack = stack[1:]
	}

	return stack
}
