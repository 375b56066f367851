// ABOUTME: Camelot wheel key parsing and mixing neighbours
// ABOUTME: Used to annotate each track page with its musical key and compatible keys

package playlist

import (
	"fmt"
	"regexp"
	"strconv"
)

// CamelotKey represents a parsed Camelot key
type CamelotKey struct {
	Letter string // "A" (minor) or "B" (major)
	Number int    // 1-12
}

var camelotKeyRegex = regexp.MustCompile(`^(\d+)([AB])$`)

// Musical key names indexed by Camelot number - 1
var (
	minorKeyNames = [12]string{"Ab minor", "Eb minor", "Bb minor", "F minor", "C minor", "G minor", "D minor", "A minor", "E minor", "B minor", "F# minor", "Db minor"}
	majorKeyNames = [12]string{"B major", "F# major", "Db major", "Ab major", "Eb major", "Bb major", "F major", "C major", "G major", "D major", "A major", "E major"}
)

// ParseCamelotKey parses a Camelot key string like "8A" into structured form
func ParseCamelotKey(key string) (*CamelotKey, error) {
	if key == "" {
		return nil, fmt.Errorf("empty key")
	}

	matches := camelotKeyRegex.FindStringSubmatch(key)
	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid key format: %s", key)
	}

	number, err := strconv.Atoi(matches[1])
	if err != nil || number < 1 || number > 12 {
		return nil, fmt.Errorf("invalid key number: %s", matches[1])
	}

	return &CamelotKey{Letter: matches[2], Number: number}, nil
}

// String returns the Camelot notation, e.g. "8A"
func (k *CamelotKey) String() string {
	return fmt.Sprintf("%d%s", k.Number, k.Letter)
}

// Name returns the musical key name, e.g. "A minor" for 8A
func (k *CamelotKey) Name() string {
	if k.Letter == "A" {
		return minorKeyNames[k.Number-1]
	}

	return majorKeyNames[k.Number-1]
}

// Relative returns the relative major/minor (same number, other letter)
func (k *CamelotKey) Relative() *CamelotKey {
	letter := "B"
	if k.Letter == "B" {
		letter = "A"
	}

	return &CamelotKey{Letter: letter, Number: k.Number}
}

// Shift moves n steps around the wheel, keeping the letter
func (k *CamelotKey) Shift(n int) *CamelotKey {
	number := ((k.Number-1+n)%12+12)%12 + 1
	return &CamelotKey{Letter: k.Letter, Number: number}
}

// CompatibleKeys returns the keys that mix cleanly with k:
// relative major/minor, then one step down and one step up the wheel
func (k *CamelotKey) CompatibleKeys() []string {
	return []string{
		k.Relative().String(),
		k.Shift(-1).String(),
		k.Shift(1).String(),
	}
}
