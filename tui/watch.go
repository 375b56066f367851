// ABOUTME: Live reload of the page source using fsnotify
// ABOUTME: Watches the source directory so atomic saves (rename over) are seen too

package tui

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// reloadDebounce lets editors finish writing before the file is read
const reloadDebounce = 100 * time.Millisecond

// newSourceWatcher watches the directory containing path
func newSourceWatcher(path string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch source directory: %w", err)
	}

	return watcher, nil
}

// isSourceChange reports whether event modified the file at path
func isSourceChange(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(path) {
		return false
	}

	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// waitForFileChange returns a command that waits for the next change to path
func waitForFileChange(watcher *fsnotify.Watcher, path string, debugf func(string, ...interface{})) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}

				if isSourceChange(event, path) {
					time.Sleep(reloadDebounce)
					return fileChangeMsg{}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				// Log error but continue watching
				debugf("[WATCHER] Error: %v", err)
			}
		}
	}
}
