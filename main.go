// ABOUTME: Entry point for playlist-pager application
// ABOUTME: Handles command-line parsing, profiling, and routing to TUI or print modes

// Package main provides the entry point for playlist-pager, a horizontally
// paged terminal viewer for playlists and YAML decks.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"playlist-pager/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	debug := flag.Bool("debug", false, "enable debug logging to "+debugLogFile)
	printMode := flag.Bool("print", false, "print every page to stdout instead of starting the pager")
	configPath := flag.String("config", "", "config file (default: ./playlist-pager.toml or ~/.config/playlist-pager/config.toml)")
	page := flag.Int("page", 0, "first page to show, 1-based (default: initial_page from the config)")
	noAnimate := flag.Bool("no-animate", false, "jump between pages instead of scrolling")
	noWatch := flag.Bool("no-watch", false, "do not reload the source when it changes on disk")
	width := flag.Int("width", 0, "card width in -print mode (default: terminal width)")
	height := flag.Int("height", 0, "card height in -print mode (default: fit each page)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Usage: playlist-pager [flags] <playlist.m3u8|deck.yaml>")
		fmt.Println("Example: playlist-pager /Volumes/music/Music/low_energy_liquid_dnb.m3u8")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()

		return 1
	}

	if *page < 0 {
		log.Printf("-page must not be negative")

		return 1
	}

	if *cpuprofile != "" {
		stopCPUProfile := setupCPUProfile(*cpuprofile)
		defer stopCPUProfile()
	}

	if *memprofile != "" {
		defer writeMemoryProfile(*memprofile)
	}

	if *debug {
		if err := SetupDebugLog(debugLogFile); err != nil {
			log.Printf("Failed to setup debug log: %v", err)

			return 1
		}
	}

	opts := RunOptions{
		SourcePath:  args[0],
		ConfigPath:  *configPath,
		Page:        *page,
		NoAnimate:   *noAnimate,
		NoWatch:     *noWatch,
		DebugLog:    *debug,
		PrintWidth:  *width,
		PrintHeight: *height,
	}

	if *printMode {
		if opts.PrintWidth == 0 {
			opts.PrintWidth = terminalWidth()
		}

		if err := RunPrint(opts, os.Stdout); err != nil {
			log.Printf("Print error: %v", err)

			return 1
		}

		return 0
	}

	if err := RunTUI(opts); err != nil {
		log.Printf("TUI error: %v", err)

		return 1
	}

	return 0
}

// RunTUI starts the interactive pager
func RunTUI(opts RunOptions) error {
	cfg := loadConfig(opts.ConfigPath)

	return tui.Run(tui.Options{
		SourcePath:  opts.SourcePath,
		InitialPage: initialPage(opts, cfg),
		NoWatch:     opts.NoWatch,
		NoAnimate:   opts.NoAnimate,
	}, tui.Dependencies{
		Config:     cfg,
		LoadSource: loadSource,
		Debugf:     debugf,
	})
}

// setupCPUProfile starts CPU profiling, returns cleanup function
func setupCPUProfile(filename string) func() {
	f, err := os.Create(filename)
	if err != nil {
		log.Fatalf("could not create CPU profile: %v", err)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		log.Fatalf("could not start CPU profile: %v", err)
	}

	return func() {
		pprof.StopCPUProfile()

		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close CPU profile: %v", err)
		}
	}
}

// writeMemoryProfile writes memory profile to file
func writeMemoryProfile(filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("could not create memory profile: %v", err)

		return
	}

	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close memory profile: %v", err)
		}
	}()

	runtime.GC()

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Printf("could not write memory profile: %v", err)
	}
}
