// ABOUTME: YAML deck files: an ordered list of titled text pages
// ABOUTME: Decodes decks with yaml.v3, keeping field order as written

// Package deck loads text page decks from YAML.
//
//	title: Release notes
//	pages:
//	  - title: Overview
//	    subtitle: v2.0
//	    fields:
//	      Owner: platform team
//	    body: |
//	      Free text shown in the page body.
package deck

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoPages is returned when a deck has no pages key at all
var ErrNoPages = errors.New("deck has no pages key")

// Deck is a titled sequence of pages
type Deck struct {
	Title string `yaml:"title"`
	Pages []Page `yaml:"pages"`
}

// Page is one deck entry
type Page struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Body     string `yaml:"body"`
	Fields   Fields `yaml:"fields"`
}

// Field is a single key/value line
type Field struct {
	Name  string
	Value string
}

// Fields keeps mapping entries in document order
type Fields []Field

// UnmarshalYAML decodes a mapping node without losing key order
func (f *Fields) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: fields must be a mapping", node.Line)
	}

	fields := make(Fields, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value string
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("line %d: field %q: %w", node.Content[i+1].Line, node.Content[i].Value, err)
		}

		fields = append(fields, Field{Name: node.Content[i].Value, Value: value})
	}

	*f = fields

	return nil
}

// Parse decodes a deck document
func Parse(data []byte) (*Deck, error) {
	var raw struct {
		Title string    `yaml:"title"`
		Pages yaml.Node `yaml:"pages"`
	}

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse deck: %w", err)
	}

	if raw.Pages.Kind == 0 {
		return nil, ErrNoPages
	}

	d := &Deck{Title: raw.Title}
	if err := raw.Pages.Decode(&d.Pages); err != nil {
		return nil, fmt.Errorf("failed to decode pages: %w", err)
	}

	return d, nil
}

// Load reads and parses a deck file
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}

	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}
