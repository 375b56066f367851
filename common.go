// ABOUTME: Shared initialization code for all modes (TUI, print)
// ABOUTME: Provides debug logging, config loading and small output helpers

package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"playlist-pager/config"
)

const debugLogFile = "playlist-pager-debug.log"

var debugLog *log.Logger

// RunOptions contains command-line options for all modes
type RunOptions struct {
	SourcePath  string
	ConfigPath  string
	Page        int // 1-based; 0 keeps the configured initial page
	NoAnimate   bool
	NoWatch     bool
	DebugLog    bool
	PrintWidth  int
	PrintHeight int
}

// loadConfig reads the config file, falling back to defaults with a warning
func loadConfig(path string) config.PagerConfig {
	if path == "" {
		path = config.GetConfigPath()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Printf("Warning: %v (using defaults)", err)
	}

	debugf("[MAIN] Config %s: %+v", path, cfg)

	return cfg
}

// initialPage resolves the first page from the -page flag and the config
func initialPage(opts RunOptions, cfg config.PagerConfig) int {
	if opts.Page > 0 {
		return opts.Page - 1
	}

	return cfg.InitialPage
}

// SetupDebugLog initializes debug logging
func SetupDebugLog(filename string) error {
	if err := InitDebugLog(filename); err != nil {
		return fmt.Errorf("failed to initialize debug log: %w", err)
	}

	if isTTY(os.Stdout) {
		fmt.Printf("Debug logging enabled: %s\n", filename)
	}

	return nil
}

// InitDebugLog points the debug logger at a size-rotated file
func InitDebugLog(filename string) error {
	if filename == "" {
		return errors.New("empty debug log file name")
	}

	writer := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	debugLog = log.New(writer, "", log.Ltime|log.Lmicroseconds)

	return nil
}

// debugf logs debug messages if enabled
func debugf(format string, args ...interface{}) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}

// isTTY checks if the given file is a terminal
func isTTY(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}

	return (stat.Mode() & os.ModeCharDevice) != 0
}

// truncate shortens string to maxLen runes, adding "..." if needed
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(r[:maxLen])
	}

	return string(r[:maxLen-3]) + "..."
}
