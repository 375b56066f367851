// ABOUTME: Configuration management for pager behaviour
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

// Package config loads and saves playlist-pager settings as TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const configFileName = "playlist-pager.toml"

// PagerConfig holds all user-tunable pager settings
type PagerConfig struct {
	// Navigation
	InitialPage int  `toml:"initial_page"`
	Animate     bool `toml:"animate"`

	// Scroll animation
	AnimationFrames int `toml:"animation_frames"`
	FrameIntervalMs int `toml:"frame_interval_ms"`

	// Mouse drag: content columns moved per terminal column dragged
	DragScale float64 `toml:"drag_scale"`

	// Reload the source when the file changes on disk
	Watch bool `toml:"watch"`

	// Parallelism for -print mode (0 = number of CPUs)
	PrintWorkers int `toml:"print_workers"`
}

// Validation errors
var (
	ErrNegativeInitialPage = errors.New("initial_page must not be negative")
	ErrAnimationFrames     = errors.New("animation_frames must be between 1 and 120")
	ErrFrameInterval       = errors.New("frame_interval_ms must be between 1 and 1000")
	ErrDragScale           = errors.New("drag_scale must be positive")
	ErrPrintWorkers        = errors.New("print_workers must not be negative")
)

// GetConfigPath returns the default config file path
// First tries current directory, then falls back to ~/.config/playlist-pager/config.toml
func GetConfigPath() string {
	local := "./" + configFileName
	if _, err := os.Stat(local); err == nil {
		return local
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return local
	}

	return filepath.Join(home, ".config", "playlist-pager", "config.toml")
}

// LoadConfig loads configuration from a TOML file
// If the file doesn't exist or fails to load, returns default config.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (PagerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

// SaveConfig saves configuration to a TOML file
func SaveConfig(path string, config PagerConfig) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", err)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultConfig returns the default pager configuration
func DefaultConfig() PagerConfig {
	return PagerConfig{
		InitialPage:     0,
		Animate:         true,
		AnimationFrames: 8,
		FrameIntervalMs: 16,
		DragScale:       1.0,
		Watch:           true,
		PrintWorkers:    0,
	}
}

// Validate checks that all values are usable
func (c PagerConfig) Validate() error {
	switch {
	case c.InitialPage < 0:
		return ErrNegativeInitialPage
	case c.AnimationFrames < 1 || c.AnimationFrames > 120:
		return ErrAnimationFrames
	case c.FrameIntervalMs < 1 || c.FrameIntervalMs > 1000:
		return ErrFrameInterval
	case c.DragScale <= 0:
		return ErrDragScale
	case c.PrintWorkers < 0:
		return ErrPrintWorkers
	}

	return nil
}

// FrameInterval returns the animation frame interval as a duration
func (c PagerConfig) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMs) * time.Millisecond
}
