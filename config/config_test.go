// ABOUTME: Tests for configuration load/save functionality
// ABOUTME: Validates TOML parsing, partial files and default config fallback behavior

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}

	if !cfg.Animate {
		t.Error("Expected animation enabled by default")
	}

	if cfg.FrameInterval() != 16*time.Millisecond {
		t.Errorf("Expected 16ms frame interval, got %v", cfg.FrameInterval())
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "playlist-pager.toml")

	cfg := DefaultConfig()
	cfg.InitialPage = 3
	cfg.Animate = false
	cfg.DragScale = 2.5

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	if err != nil {
		t.Errorf("Expected no error for non-existent file, got: %v", err)
	}

	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("Expected defaults (-want +got):\n%s", diff)
	}
}

func TestLoadPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	if err := os.WriteFile(path, []byte("initial_page = 4\nwatch = false\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	want := DefaultConfig()
	want.InitialPage = 4
	want.Watch = false

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"negative page", "initial_page = -1\n", ErrNegativeInitialPage},
		{"zero frames", "animation_frames = 0\n", ErrAnimationFrames},
		{"zero interval", "frame_interval_ms = 0\n", ErrFrameInterval},
		{"negative drag scale", "drag_scale = -1.0\n", ErrDragScale},
		{"negative workers", "print_workers = -2\n", ErrPrintWorkers},
		{"malformed", "initial_page = \n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			cfg, err := LoadConfig(path)
			if err == nil {
				t.Fatal("Expected error for invalid config")
			}

			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}

			if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
				t.Errorf("Expected defaults on error (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSaveInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AnimationFrames = 0

	err := SaveConfig(filepath.Join(t.TempDir(), "x.toml"), cfg)
	if !errors.Is(err, ErrAnimationFrames) {
		t.Errorf("Expected ErrAnimationFrames, got %v", err)
	}
}
