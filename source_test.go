// ABOUTME: Tests for the playlist and deck page sources
// ABOUTME: Covers format selection, track layout and lazy per-page loading

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"playlist-pager/playlist"
	"playlist-pager/tui"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

const testDeck = `title: Demo
pages:
  - title: Intro
    subtitle: first
    fields:
      Speaker: Ada
      Room: 4
    body: Welcome
  - subtitle: untitled
  - title: Outro
`

func TestLoadSource_ByExtension(t *testing.T) {
	deckPath := writeFile(t, "talk.YAML", testDeck)
	playlistPath := writeFile(t, "set.m3u8", "#EXTM3U\na.mp3\nb.mp3\n")

	tests := []struct {
		name    string
		path    string
		wantLen int
	}{
		{"deck", deckPath, 3},
		{"playlist", playlistPath, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := loadSource(tt.path)
			if err != nil {
				t.Fatalf("loadSource() failed: %v", err)
			}

			if src.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", src.Len(), tt.wantLen)
			}

			if src.Path() != tt.path {
				t.Errorf("Path() = %q, want %q", src.Path(), tt.path)
			}
		})
	}
}

func TestLoadSource_Unsupported(t *testing.T) {
	_, err := loadSource(writeFile(t, "notes.txt", "hello"))
	if !errors.Is(err, ErrUnsupportedSource) {
		t.Errorf("loadSource(.txt) error = %v, want ErrUnsupportedSource", err)
	}
}

func TestLoadSource_MissingFile(t *testing.T) {
	if _, err := loadSource(filepath.Join(t.TempDir(), "gone.m3u")); err == nil {
		t.Error("loadSource() succeeded for a missing playlist")
	}
}

func TestDeckSource_Page(t *testing.T) {
	src, err := openDeckSource(writeFile(t, "talk.yaml", testDeck))
	if err != nil {
		t.Fatalf("openDeckSource() failed: %v", err)
	}

	first, err := src.Page(0)
	if err != nil {
		t.Fatalf("Page(0) failed: %v", err)
	}

	want := tui.Page{
		Title:    "Intro",
		Subtitle: "first",
		Body:     "Welcome",
		Fields: []tui.Field{
			{Name: "Speaker", Value: "Ada"},
			{Name: "Room", Value: "4"},
		},
	}

	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("Page(0) mismatch (-want +got):\n%s", diff)
	}

	second, _ := src.Page(1)
	if second.Title != "Demo 2" {
		t.Errorf("untitled page title = %q, want %q", second.Title, "Demo 2")
	}
}

func TestPlaylistSource_UnreadableTrack(t *testing.T) {
	path := writeFile(t, "set.m3u8", "#EXTM3U\n#EXTINF:200,Someone - Tune\nmissing.mp3\nother.flac\n")

	src, err := openPlaylistSource(path)
	if err != nil {
		t.Fatalf("openPlaylistSource() failed: %v", err)
	}

	tests := []struct {
		index     int
		wantTitle string
	}{
		{0, "Someone - Tune"},
		{1, "other.flac"},
	}

	for _, tt := range tests {
		page, err := src.Page(tt.index)
		if err == nil {
			t.Errorf("Page(%d) succeeded for a missing file", tt.index)
		}

		if page.Title != tt.wantTitle {
			t.Errorf("Page(%d).Title = %q, want %q", tt.index, page.Title, tt.wantTitle)
		}
	}
}

func TestTrackPage(t *testing.T) {
	key, err := playlist.ParseCamelotKey("8A")
	if err != nil {
		t.Fatal(err)
	}

	track := &playlist.Track{
		Path:        "Aperio/Dreams.mp3",
		Key:         "8A",
		ParsedKey:   key,
		Artist:      "Aperio",
		Album:       "Dreams",
		Title:       "Dreams",
		Genre:       "Drum & Bass",
		Year:        2021,
		TrackNumber: 3,
		TrackTotal:  9,
		Energy:      4,
		BPM:         174,
		Format:      "ID3v2.4",
		FileType:    "MP3",
	}

	page := trackPage(track)

	if page.Title != "Dreams" || page.Subtitle != "Aperio / Dreams" || page.Body != track.Path {
		t.Errorf("trackPage() header = %q / %q / %q", page.Title, page.Subtitle, page.Body)
	}

	var names []string
	for _, f := range page.Fields {
		names = append(names, f.Name)
	}

	wantNames := []string{"Key", "BPM", "Energy", "Genre", "Year", "Track", "Format"}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Errorf("field names mismatch (-want +got):\n%s", diff)
	}

	if got := page.Fields[0].Value; !strings.HasPrefix(got, "8A (A minor), mixes with 8B") {
		t.Errorf("Key field = %q", got)
	}

	if got := page.Fields[5].Value; got != "3/9" {
		t.Errorf("Track field = %q, want 3/9", got)
	}
}

func TestTrackPage_SparseTags(t *testing.T) {
	page := trackPage(&playlist.Track{Path: "x.mp3", Title: "x.mp3", Album: "Live", Key: "??"})

	if page.Subtitle != "Live" {
		t.Errorf("Subtitle = %q, want Live", page.Subtitle)
	}

	want := []tui.Field{{Name: "Key", Value: "??"}}
	if diff := cmp.Diff(want, page.Fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatters(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"bpm whole", formatBPM(128), "128"},
		{"bpm fraction", formatBPM(87.5), "87.5"},
		{"bpm missing", formatBPM(0), ""},
		{"int", formatInt(7), "7"},
		{"int missing", formatInt(0), ""},
		{"track with total", formatTrackNumber(2, 10), "2/10"},
		{"track alone", formatTrackNumber(2, 0), "2"},
		{"track missing", formatTrackNumber(0, 10), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
