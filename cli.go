// ABOUTME: Print mode: renders every page without starting the terminal UI
// ABOUTME: Pages are materialized in parallel on a worker pool and written in order

package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"golang.org/x/term"

	"playlist-pager/pool"
	"playlist-pager/tui"
)

const (
	defaultPrintWidth = 80
	minPrintWidth     = 20
)

// printedPage is one materialized page ready for output
type printedPage struct {
	page tui.Page
	err  error
	card string
}

// RunPrint writes a table of contents followed by every page card to w.
// Unreadable pages are rendered as error cards; only a source that cannot be
// opened fails the run.
func RunPrint(opts RunOptions, w io.Writer) error {
	cfg := loadConfig(opts.ConfigPath)

	source, err := loadSource(opts.SourcePath)
	if err != nil {
		return err
	}

	width := max(minPrintWidth, opts.PrintWidth)
	count := source.Len()

	workers := pool.NewWorkerPool(cfg.PrintWorkers, count)
	defer workers.Close()

	start := time.Now()

	pages := pool.Map(workers, count, func(i int) printedPage {
		page, err := source.Page(i)
		if err != nil {
			debugf("[PRINT] Page %d failed: %v", i, err)
		}

		return printedPage{
			page: page,
			err:  err,
			card: tui.RenderCard(i, page, err, width, opts.PrintHeight),
		}
	})

	debugf("[PRINT] Rendered %d pages with %d workers in %v", count, workers.Workers(), time.Since(start))

	if err := writeContents(w, pages); err != nil {
		return err
	}

	failed := 0

	for i, p := range pages {
		if p.err != nil {
			failed++
		}

		if _, err := fmt.Fprintf(w, "\n%s\n", p.card); err != nil {
			return fmt.Errorf("failed to write page %d: %w", i+1, err)
		}
	}

	if _, err := fmt.Fprintf(w, "\n%d pages, %d unreadable\n", count, failed); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	return nil
}

// writeContents writes one table row per page
func writeContents(w io.Writer, pages []printedPage) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "#\tTitle\tSubtitle\tStatus"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if _, err := fmt.Fprintln(tw, "---\t-----\t--------\t------"); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}

	for i, p := range pages {
		status := "ok"
		if p.err != nil {
			status = "unreadable"
		}

		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			i+1,
			truncate(p.page.Title, 40),
			truncate(p.page.Subtitle, 30),
			status,
		); err != nil {
			return fmt.Errorf("failed to write page %d: %w", i+1, err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush contents: %w", err)
	}

	return nil
}

// terminalWidth returns the width of stdout when it is a terminal
func terminalWidth() int {
	if !isTTY(os.Stdout) {
		return defaultPrintWidth
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultPrintWidth
	}

	return width
}
