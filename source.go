// ABOUTME: Page sources backing the TUI and print mode
// ABOUTME: Adapts playlists (one page per track) and YAML decks to tui.Source

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"playlist-pager/deck"
	"playlist-pager/playlist"
	"playlist-pager/tui"
)

// ErrUnsupportedSource is returned for files that are neither playlists nor decks
var ErrUnsupportedSource = errors.New("unsupported source file (want .m3u, .m3u8, .yaml or .yml)")

// loadSource opens path as a page source, choosing the format by extension
func loadSource(path string) (tui.Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".m3u", ".m3u8":
		return openPlaylistSource(path)
	case ".yaml", ".yml":
		return openDeckSource(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedSource)
	}
}

// playlistSource shows one track per page. Tags are read only when a page
// is materialized.
type playlistSource struct {
	path    string
	entries []playlist.Entry
}

func openPlaylistSource(path string) (*playlistSource, error) {
	entries, err := playlist.ReadPlaylist(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load playlist: %w", err)
	}

	debugf("[MAIN] Playlist %s: %d entries", path, len(entries))

	return &playlistSource{path: path, entries: entries}, nil
}

func (s *playlistSource) Path() string { return s.path }
func (s *playlistSource) Len() int     { return len(s.entries) }

// Page reads the tags of track index
func (s *playlistSource) Page(index int) (tui.Page, error) {
	entry := s.entries[index]

	track, err := playlist.GetTrackMetadata(entry)
	if err != nil {
		title := entry.Hint
		if title == "" {
			title = filepath.Base(entry.Path)
		}

		return tui.Page{Title: title}, fmt.Errorf("%s: %w", entry.Path, err)
	}

	return trackPage(track), nil
}

// trackPage lays out the metadata of one track
func trackPage(t *playlist.Track) tui.Page {
	page := tui.Page{
		Title: t.Title,
		Body:  t.Path,
	}

	switch {
	case t.Artist != "" && t.Album != "":
		page.Subtitle = t.Artist + " / " + t.Album
	case t.Artist != "":
		page.Subtitle = t.Artist
	default:
		page.Subtitle = t.Album
	}

	add := func(name, value string) {
		if value != "" {
			page.Fields = append(page.Fields, tui.Field{Name: name, Value: value})
		}
	}

	add("Key", formatKey(t))
	add("BPM", formatBPM(t.BPM))
	add("Energy", formatInt(t.Energy))
	add("Genre", t.Genre)
	add("Year", formatInt(t.Year))
	add("Track", formatTrackNumber(t.TrackNumber, t.TrackTotal))
	add("Format", strings.TrimSpace(t.FileType+" "+t.Format))

	if t.HasArtwork {
		add("Artwork", "yes")
	}

	return page
}

// formatKey shows the Camelot key with its name and compatible keys
func formatKey(t *playlist.Track) string {
	if t.ParsedKey == nil {
		return t.Key
	}

	return fmt.Sprintf("%s (%s), mixes with %s",
		t.ParsedKey, t.ParsedKey.Name(), strings.Join(t.ParsedKey.CompatibleKeys(), " "))
}

func formatBPM(bpm float64) string {
	if bpm <= 0 {
		return ""
	}

	return strconv.FormatFloat(bpm, 'f', -1, 64)
}

func formatInt(n int) string {
	if n <= 0 {
		return ""
	}

	return strconv.Itoa(n)
}

func formatTrackNumber(n, total int) string {
	switch {
	case n <= 0:
		return ""
	case total <= 0:
		return strconv.Itoa(n)
	default:
		return fmt.Sprintf("%d/%d", n, total)
	}
}

// deckSource shows the pages of a YAML deck
type deckSource struct {
	path string
	deck *deck.Deck
}

func openDeckSource(path string) (*deckSource, error) {
	d, err := deck.Load(path)
	if err != nil {
		return nil, err
	}

	debugf("[MAIN] Deck %s (%q): %d pages", path, d.Title, len(d.Pages))

	return &deckSource{path: path, deck: d}, nil
}

func (s *deckSource) Path() string { return s.path }
func (s *deckSource) Len() int     { return len(s.deck.Pages) }

// Page converts deck page index
func (s *deckSource) Page(index int) (tui.Page, error) {
	p := s.deck.Pages[index]

	page := tui.Page{
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Body:     p.Body,
	}

	if page.Title == "" {
		name := s.deck.Title
		if name == "" {
			name = "Page"
		}

		page.Title = fmt.Sprintf("%s %d", name, index+1)
	}

	for _, f := range p.Fields {
		page.Fields = append(page.Fields, tui.Field{Name: f.Name, Value: f.Value})
	}

	return page, nil
}
