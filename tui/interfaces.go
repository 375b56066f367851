// ABOUTME: Interfaces defining dependencies for the TUI package
// ABOUTME: Page sources are supplied by the caller so the TUI stays format agnostic

package tui

// Field is a labelled value shown under a page title
type Field struct {
	Name  string
	Value string
}

// Page is the content of one card before rendering
type Page struct {
	Title    string
	Subtitle string
	Fields   []Field
	Body     string
}

// Source supplies pages by index
type Source interface {
	// Path is the file the pages come from (watched for changes)
	Path() string
	// Len returns the number of pages
	Len() int
	// Page loads the content of page index, 0 <= index < Len()
	Page(index int) (Page, error)
}

// SourceLoader opens a source from disk
type SourceLoader func(path string) (Source, error)
