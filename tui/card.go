// ABOUTME: Page cards and the provider that materializes them from a Source
// ABOUTME: A card is the handle the pager attaches to the strip for one page index

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Card chrome: rounded border plus one column of padding on each side
const (
	cardBorderWidth  = 2
	cardPaddingWidth = 2
	cardBorderHeight = 2
)

// Card is a rendered page of fixed size. The body scrolls vertically.
type Card struct {
	Index  int
	Title  string
	Failed bool

	width  int
	height int
	header []string
	body   viewport.Model
}

// newCard lays out page into a width x height card
func newCard(index int, page Page, loadErr error, width, height int) *Card {
	innerWidth := max(1, width-cardBorderWidth-cardPaddingWidth)

	c := &Card{
		Index:  index,
		Title:  page.Title,
		width:  width,
		height: height,
	}

	if loadErr != nil {
		c.Failed = true
		c.Title = fmt.Sprintf("Page %d unavailable", index+1)
		page = Page{Subtitle: page.Title, Body: loadErr.Error()}
	}

	titleRender := cardTitleStyle
	if c.Failed {
		titleRender = cardErrorStyle
	}

	c.header = append(c.header, ansi.Truncate(titleRender.Render(c.Title), innerWidth, "…"))

	if page.Subtitle != "" {
		c.header = append(c.header, ansi.Truncate(cardSubtitleStyle.Render(page.Subtitle), innerWidth, "…"))
	}

	for _, f := range page.Fields {
		line := cardLabelStyle.Render(f.Name+":") + " " + f.Value
		c.header = append(c.header, ansi.Truncate(line, innerWidth, "…"))
	}

	c.header = append(c.header, "")

	body := lipgloss.NewStyle().Width(innerWidth).Render(page.Body)

	// A non-positive height sizes the card to its whole body
	if height <= 0 {
		c.height = len(c.header) + lipgloss.Height(body) + cardBorderHeight
	}

	bodyHeight := max(1, c.height-cardBorderHeight-len(c.header))
	c.body = viewport.New(innerWidth, bodyHeight)
	c.body.SetContent(body)

	return c
}

// RenderCard renders page as a standalone card of width x height cells,
// growing to fit the body when height <= 0. A non-nil loadErr renders the
// error card shown for unreadable pages.
func RenderCard(index int, page Page, loadErr error, width, height int) string {
	return strings.Join(newCard(index, page, loadErr, width, height).Lines(), "\n")
}

// ScrollBody moves the body text by delta lines (negative scrolls up)
func (c *Card) ScrollBody(delta int) {
	if delta < 0 {
		c.body.ScrollUp(-delta)
	} else {
		c.body.ScrollDown(delta)
	}
}

// BodyOffset returns the first visible body line
func (c *Card) BodyOffset() int {
	return c.body.YOffset
}

// Lines renders the card as exactly height lines of exactly width cells
func (c *Card) Lines() []string {
	content := strings.Join(c.header, "\n") + "\n" + c.body.View()

	style := cardStyle
	if c.Failed {
		style = failedCardStyle
	}

	framed := style.
		Width(max(1, c.width-cardBorderWidth)).
		Height(max(1, c.height-cardBorderHeight)).
		Render(content)

	return fitLines(framed, c.width, c.height)
}

// fitLines splits s into exactly height lines, each cut or padded to width cells
func fitLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	out := make([]string, height)

	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}

		out[i] = fitWidth(line, width)
	}

	return out
}

// fitWidth cuts or pads a styled line to exactly width cells
func fitWidth(line string, width int) string {
	w := ansi.StringWidth(line)
	if w > width {
		return ansi.Truncate(line, width, "")
	}

	return line + strings.Repeat(" ", width-w)
}

// CardProvider materializes cards from a Source on demand.
// It implements pager.Provider[*Card] and pager.Releaser[*Card].
type CardProvider struct {
	source Source
	width  int
	height int
	debugf func(string, ...interface{})

	live     map[int]*Card
	loads    int
	releases int
}

// NewCardProvider creates a provider over source
func NewCardProvider(source Source, debugf func(string, ...interface{})) *CardProvider {
	if debugf == nil {
		debugf = func(string, ...interface{}) {}
	}

	return &CardProvider{
		source: source,
		debugf: debugf,
		live:   make(map[int]*Card),
	}
}

// SetSource replaces the page source. Existing cards are dropped.
func (p *CardProvider) SetSource(source Source) {
	p.source = source
	p.live = make(map[int]*Card)
}

// SetSize sets the card size used for cards created from now on
func (p *CardProvider) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// PageCount implements pager.Provider
func (p *CardProvider) PageCount() int {
	if p.source == nil {
		return 0
	}

	return p.source.Len()
}

// ContentForPage implements pager.Provider. A live card for index is reused.
// Load failures become an error card so every in-range index has a handle.
func (p *CardProvider) ContentForPage(index int) *Card {
	if card, ok := p.live[index]; ok {
		return card
	}

	page, err := p.source.Page(index)
	if err != nil {
		p.debugf("[TUI] Page %d failed to load: %v", index, err)
	}

	card := newCard(index, page, err, p.width, p.height)
	p.live[index] = card
	p.loads++

	return card
}

// ReleasePage implements pager.Releaser
func (p *CardProvider) ReleasePage(index int, card *Card) {
	if p.live[index] == card {
		delete(p.live, index)
	}

	p.releases++
}

// Stats returns how many cards were created and released so far
func (p *CardProvider) Stats() (loads, releases int) {
	return p.loads, p.releases
}

// Live returns the number of cards currently held
func (p *CardProvider) Live() int {
	return len(p.live)
}
