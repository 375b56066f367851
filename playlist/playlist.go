// ABOUTME: Reads M3U/M3U8 playlist files into track entries
// ABOUTME: Entries carry only their path; tags are read later, one page at a time

// Package playlist handles M3U8 playlist files and music metadata.
// Reading a playlist is cheap: it only collects track paths. Tag metadata is
// fetched per track with GetTrackMetadata when a page is materialized.
package playlist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one playlist line: the track path as written, plus the
// directory relative paths resolve against
type Entry struct {
	Path    string // Path as it appears in the playlist
	BaseDir string // Directory of the playlist file
	Hint    string // Title from a preceding #EXTINF line, if any
}

// Resolved returns the path to open on disk
func (e Entry) Resolved() string {
	if filepath.IsAbs(e.Path) || e.BaseDir == "" {
		return e.Path
	}

	return filepath.Join(e.BaseDir, e.Path)
}

// ReadPlaylist reads an M3U8 playlist file without touching the tracks it lists
func ReadPlaylist(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open playlist: %w", err)
	}

	defer func() {
		_ = file.Close() // Explicitly ignore error for read-only file
	}()

	baseDir := filepath.Dir(path)

	var (
		entries []Entry
		hint    string
	)

	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "#EXTINF:") {
			hint = extinfTitle(line)
			continue
		}

		// Skip empty lines and other comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entries = append(entries, Entry{Path: line, BaseDir: baseDir, Hint: hint})
		hint = ""
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading playlist: %w", err)
	}

	return entries, nil
}

// extinfTitle extracts the display title from "#EXTINF:<seconds>,<title>"
func extinfTitle(line string) string {
	_, title, ok := strings.Cut(line, ",")
	if !ok {
		return ""
	}

	return strings.TrimSpace(title)
}
