// ABOUTME: Defines Track struct and metadata fetching directly from audio files
// ABOUTME: Reads file tags for one track: key, energy, BPM, artist, album and more

package playlist

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/dhowden/tag"
)

// Track is the tag metadata shown on one page
type Track struct {
	Path        string      // Path as written in the playlist
	Key         string      // Camelot key (e.g., "8A")
	ParsedKey   *CamelotKey // nil when Key is missing or malformed
	Artist      string
	Album       string
	Title       string
	Genre       string
	Year        int
	TrackNumber int
	TrackTotal  int
	Energy      int     // Energy level 1-10 (0 if not available)
	BPM         float64 // Beats per minute (0 if not available)
	Format      string  // Tag format, e.g. "ID3v2.4"
	FileType    string  // Audio container, e.g. "MP3"
	HasArtwork  bool
}

// Mixed-in-key style comment: "8A - Energy 6"
var (
	keyRegex    = regexp.MustCompile(`(\d+[AB])\s*-\s*Energy`)
	energyRegex = regexp.MustCompile(`Energy\s+(\d+)`)
)

// bpmTagNames are the raw tag names BPM is stored under across formats
var bpmTagNames = []string{"BPM", "TBPM", "bpm", "tempo"}

// GetTrackMetadata reads the tags of the file an entry points to
func GetTrackMetadata(entry Entry) (*Track, error) {
	file, err := os.Open(entry.Resolved())
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	title := metadata.Title()
	if title == "" {
		title = entry.Hint
	}
	if title == "" {
		title = filepath.Base(entry.Path)
	}

	comments := metadata.Comment()
	key := extractKey(comments)
	parsedKey, _ := ParseCamelotKey(key)
	trackNumber, trackTotal := metadata.Track()

	return &Track{
		Path:        entry.Path,
		Key:         key,
		ParsedKey:   parsedKey,
		Artist:      metadata.Artist(),
		Album:       metadata.Album(),
		Title:       title,
		Genre:       metadata.Genre(),
		Year:        metadata.Year(),
		TrackNumber: trackNumber,
		TrackTotal:  trackTotal,
		Energy:      extractEnergy(comments),
		BPM:         extractBPM(metadata.Raw()),
		Format:      string(metadata.Format()),
		FileType:    string(metadata.FileType()),
		HasArtwork:  metadata.Picture() != nil,
	}, nil
}

// extractBPM looks up the tempo among the raw tags
func extractBPM(raw map[string]interface{}) float64 {
	for _, name := range bpmTagNames {
		val, ok := raw[name]
		if !ok {
			continue
		}

		var bpm float64
		switch v := val.(type) {
		case string:
			bpm, _ = strconv.ParseFloat(v, 64)
		case int:
			bpm = float64(v)
		case float64:
			bpm = v
		}

		if bpm > 0 {
			return bpm
		}
	}

	return 0
}

// extractKey extracts Camelot key from comments string
// Example: "8A - Energy 6" -> "8A"
func extractKey(comments string) string {
	matches := keyRegex.FindStringSubmatch(comments)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// extractEnergy extracts energy level from comments string
// Example: "8A - Energy 6" -> 6
func extractEnergy(comments string) int {
	matches := energyRegex.FindStringSubmatch(comments)
	if len(matches) > 1 {
		if energy, err := strconv.Atoi(matches[1]); err == nil {
			return energy
		}
	}

	return 0
}
