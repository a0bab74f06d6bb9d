// Package commands implements the bufr-log CLI commands.
package commands

import (
	"fmt"
	"io"

	"github.com/bufrkit/bufr-go/pkg/log"
)

// RunView prints the log file in human-readable form, applying the filter.
func RunView(path string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
	return nil
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [run:id] CATEGORY table
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [run:%s] %-5s table=%s\n", ts, shortenRunID(event.RunID), event.Category, event.Table)

	switch {
	case event.Run != nil:
		fmt.Fprintf(w, "  State: %s\n", event.Run.State)
		if event.Run.Manifest != "" {
			fmt.Fprintf(w, "  Manifest: %s\n", event.Run.Manifest)
		}
	case event.Build != nil:
		fmt.Fprintf(w, "  Rows: %d (skipped %d)\n", event.Build.Rows, event.Build.Skipped)
		fmt.Fprintf(w, "  Entries: %d\n", event.Build.Entries)
		if event.Build.Output != "" {
			fmt.Fprintf(w, "  Output: %s\n", event.Build.Output)
		}
	case event.Row != nil:
		fmt.Fprintf(w, "  Line %d: %s", event.Row.Line, event.Row.FXY)
		if event.Row.Reason != "" {
			fmt.Fprintf(w, " (%s)", event.Row.Reason)
		}
		fmt.Fprintln(w)
	case event.Error != nil:
		fmt.Fprintf(w, "  Message: %s\n", event.Error.Message)
		if event.Error.Context != "" {
			fmt.Fprintf(w, "  Context: %s\n", event.Error.Context)
		}
		if event.Error.Line != 0 {
			fmt.Fprintf(w, "  Line: %d\n", event.Error.Line)
		}
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenRunID returns the first 8 characters of the run ID.
func shortenRunID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
