// ABOUTME: Event handling and state updates for the TUI
// ABOUTME: Translates keys, mouse drags and animation frames into pager calls

package tui

import (
	"fmt"
	"runtime/debug"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.debugf("[PANIC] Update panic: %v", r)
			m.debugf("[PANIC] Stack trace: %s", string(debug.Stack()))
			panic(r) // Re-panic so Bubble Tea can handle it
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		page := m.initialPage
		if m.configured {
			page = m.ctrl.CurrentPage()
		}

		m.configure(page)
		m.debugf("[TUI] Resized to %dx%d, configured at page %d", msg.Width, msg.Height, m.ctrl.CurrentPage())

		return m, nil

	case frameMsg:
		return m, m.handleFrame(msg)

	case fileChangeMsg:
		m.debugf("[TUI] Source changed on disk: %s", m.sourcePath)

		return m, tea.Batch(
			reloadSource(m.loadSource, m.sourcePath),
			waitForFileChange(m.watcher, m.sourcePath, m.debugf),
		)

	case sourceLoadedMsg:
		m.handleSourceLoaded(msg)
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Prev):
			return m, m.navigate(func() { m.ctrl.GoToPrevious(m.animate) })

		case key.Matches(msg, keys.Next):
			return m, m.navigate(func() { m.ctrl.GoToNext(m.animate) })

		case key.Matches(msg, keys.First):
			return m, m.jumpToPage(0)

		case key.Matches(msg, keys.Last):
			return m, m.jumpToPage(m.ctrl.PageCount() - 1)

		case key.Matches(msg, keys.Jump):
			return m, m.jumpToPage(int(msg.Runes[0] - '1'))

		case key.Matches(msg, keys.Back):
			return m, m.historyStep(m.history.Back, "Nothing to go back to")

		case key.Matches(msg, keys.Forward):
			return m, m.historyStep(m.history.Forward, "Nothing to go forward to")

		case key.Matches(msg, keys.Up):
			m.scrollBody(-1)

		case key.Matches(msg, keys.Down):
			m.scrollBody(1)

		case key.Matches(msg, keys.Animate):
			m.animate = !m.animate
			m.setStatusMsg(fmt.Sprintf("Animation %s", onOff(m.animate)))

		case key.Matches(msg, keys.Reload):
			m.setStatusMsg("Reloading...")
			return m, reloadSource(m.loadSource, m.sourcePath)

		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

// navigate runs a controller navigation call unless a drag is in progress.
// A pending settle animation is completed first.
func (m *model) navigate(call func()) tea.Cmd {
	if !m.configured || m.dragActive {
		return nil
	}

	if m.settling {
		m.finishSettle()
	}

	call()

	return m.scheduleFrame()
}

// goToPage navigates to page after checking it exists; the controller's
// GoToPage leaves range checks to its caller
func (m *model) goToPage(page int) tea.Cmd {
	if page < 0 || page >= m.ctrl.PageCount() {
		m.setStatusMsg(fmt.Sprintf("No page %d", page+1))
		return nil
	}

	return m.navigate(func() { m.ctrl.GoToPage(page, m.animate) })
}

// jumpToPage is goToPage remembering the page left behind for Back
func (m *model) jumpToPage(page int) tea.Cmd {
	from := m.ctrl.CurrentPage()

	cmd := m.goToPage(page)
	if m.ctrl.CurrentPage() != from {
		m.history.Push(from)
	}

	return cmd
}

// historyStep moves to the page returned by step (History.Back or Forward)
func (m *model) historyStep(step func(current int) (int, bool), empty string) tea.Cmd {
	if !m.configured || m.dragActive {
		return nil
	}

	page, ok := step(m.ctrl.CurrentPage())
	if !ok {
		m.setStatusMsg(empty)
		return nil
	}

	return m.goToPage(page)
}

// scrollBody scrolls the text of the current card
func (m *model) scrollBody(delta int) {
	if card, ok := m.currentCard(); ok {
		card.ScrollBody(delta)
	}
}

// handleFrame advances the strip animation by one frame
func (m *model) handleFrame(msg frameMsg) tea.Cmd {
	if !m.strip.Step(msg.gen) {
		return nil
	}

	if m.settling {
		m.ctrl.OnScrollPositionChanged(m.strip.Offset())
	}

	if m.strip.Animating() {
		return frameTick(msg.gen, m.cfg.FrameInterval())
	}

	if m.settling {
		m.finishSettle()
	}

	return nil
}

// finishSettle ends the drag once the snap animation is over (or abandoned)
func (m *model) finishSettle() {
	m.settling = false
	m.strip.StopAnimation()
	m.ctrl.OnDragSettle()
	m.debugf("[TUI] Drag settled on page %d", m.ctrl.CurrentPage())
}

// handleMouse maps mouse input onto drag and navigation calls
func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.configured {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelLeft:
			return m.navigate(func() { m.ctrl.GoToPrevious(m.animate) })
		case tea.MouseButtonWheelRight:
			return m.navigate(func() { m.ctrl.GoToNext(m.animate) })
		case tea.MouseButtonWheelUp:
			m.scrollBody(-wheelBodyLines)
		case tea.MouseButtonWheelDown:
			m.scrollBody(wheelBodyLines)
		case tea.MouseButtonLeft:
			if m.inStrip(msg.Y) {
				m.beginDrag(msg.X)
			}
		}

	case tea.MouseActionMotion:
		if m.dragActive {
			m.moveDrag(msg.X)
		}

	case tea.MouseActionRelease:
		if m.dragActive {
			return m.endDrag()
		}
	}

	return nil
}

// inStrip reports whether terminal row y lies on the page strip
func (m *model) inStrip(y int) bool {
	bounds := m.strip.Bounds()
	return y >= titleHeight && y < titleHeight+int(bounds.Height)
}

// beginDrag grabs the strip at column x. Grabbing during a settle animation
// continues the same drag.
func (m *model) beginDrag(x int) {
	if m.ctrl.PageCount() == 0 {
		return
	}

	m.settling = false
	m.strip.StopAnimation()

	m.ctrl.OnDragBegin()
	m.dragActive = true
	m.dragAnchorX = x
	m.dragStartOffset = m.strip.Offset()
}

// moveDrag follows the pointer: content moves opposite to the pointer
func (m *model) moveDrag(x int) {
	offset := m.dragStartOffset - float64(x-m.dragAnchorX)*m.cfg.DragScale
	m.strip.SetOffset(offset)
	m.ctrl.OnScrollPositionChanged(m.strip.Offset())
}

// endDrag releases the strip and snaps it to the nearest page
func (m *model) endDrag() tea.Cmd {
	m.dragActive = false

	page := m.ctrl.PageAt(m.strip.Offset())
	m.strip.ScrollTo(m.ctrl.Geometry().OffsetFor(page), m.animate)

	if m.strip.Animating() {
		m.settling = true
		return m.scheduleFrame()
	}

	m.ctrl.OnScrollPositionChanged(m.strip.Offset())
	m.ctrl.OnDragSettle()

	return nil
}

// handleSourceLoaded swaps in a reloaded source as a fresh configuration
func (m *model) handleSourceLoaded(msg sourceLoadedMsg) {
	if msg.err != nil {
		m.debugf("[TUI] Reload failed: %v", msg.err)
		m.setStatusMsg(fmt.Sprintf("Reload failed: %v", msg.err))

		return
	}

	page := m.ctrl.CurrentPage()

	m.source = msg.source
	m.provider.SetSource(msg.source)
	m.history.Clear()
	m.configure(page)

	m.setStatusMsg(fmt.Sprintf("Reloaded %s: %d pages", m.sourceName(), m.ctrl.PageCount()))
}

func onOff(b bool) string {
	if b {
		return "on"
	}

	return "off"
}
