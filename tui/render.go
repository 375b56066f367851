// ABOUTME: Rendering functions for TUI components
// ABOUTME: Title line, page strip, status bar and help line

package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// View renders the whole screen
func (m model) View() string {
	if m.quitting {
		return ""
	}

	if !m.configured {
		return "Loading..."
	}

	return strings.Join([]string{
		m.renderTitle(),
		m.renderStrip(),
		m.renderStatus(),
		m.renderHelp(),
	}, "\n")
}

// renderTitle shows the source name and the current page title
func (m model) renderTitle() string {
	title := m.sourceName()

	if card, ok := m.currentCard(); ok && card.Title != "" {
		title += " | " + card.Title
	}

	return ansi.Truncate(titleStyle.Render(title), max(1, m.width), "…")
}

// renderStrip renders the page strip, or a placeholder for an empty source
func (m model) renderStrip() string {
	if m.ctrl.PageCount() == 0 {
		bounds := m.strip.Bounds()
		lines := make([]string, int(bounds.Height))
		lines[0] = "No pages in " + m.sourceName()

		return strings.Join(lines, "\n")
	}

	return m.strip.View()
}

// renderStatus renders the status bar
func (m model) renderStatus() string {
	if m.statusMsg != "" && time.Since(m.statusMsgAge) < statusMessageDuration {
		return m.statusLine(m.statusMsg)
	}

	count := m.ctrl.PageCount()
	pageInfo := "Page 0/0"
	if count > 0 {
		pageInfo = fmt.Sprintf("Page %d/%d", m.ctrl.CurrentPage()+1, count)
	}

	loaded := make([]string, 0, 3)
	for _, index := range m.ctrl.Materialized() {
		loaded = append(loaded, strconv.Itoa(index+1))
	}

	last := "-"
	if e, ok := m.transitions.Last(); ok {
		last = e.String()
	}

	mode := ""
	if m.ctrl.Dragging() {
		mode = " | DRAG"
	}

	loads, releases := m.provider.Stats()

	status := fmt.Sprintf("%s | Loaded: %s | Last: %s | Cards: +%d -%d%s",
		pageInfo,
		strings.Join(loaded, ","),
		last,
		loads,
		releases,
		mode,
	)

	return m.statusLine(status)
}

// statusLine renders text as a single status bar row
func (m model) statusLine(text string) string {
	inner := max(1, m.width-statusStyle.GetHorizontalPadding())
	return statusStyle.Width(m.width).Render(ansi.Truncate(text, inner, "…"))
}

// renderHelp renders the key help
func (m model) renderHelp() string {
	return m.help.View(keys)
}
