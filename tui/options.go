// ABOUTME: TUI mode configuration and dependency injection
// ABOUTME: Defines input parameters and collaborators for running the pager

package tui

import "playlist-pager/config"

// Options contains configuration for running the TUI
type Options struct {
	SourcePath  string // File to page through
	InitialPage int    // Page shown first (clamped to the source)
	NoWatch     bool   // Disable live reload even if the config enables it
	NoAnimate   bool   // Disable scroll animation even if the config enables it
}

// Dependencies holds all external dependencies for the TUI
// This allows for clean dependency injection and easy testing
type Dependencies struct {
	Config     config.PagerConfig
	LoadSource SourceLoader
	Debugf     func(string, ...interface{})
}
