package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bufrkit/bufr-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	EventsByTable    map[log.Table]int
	Runs             map[string]*RunStatsEntry
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// RunStatsEntry holds statistics for a single generation run.
type RunStatsEntry struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Version   string
	Entries   int
	Skipped   int
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		EventsByTable:    make(map[log.Table]int),
		Runs:             make(map[string]*RunStatsEntry),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++
		stats.EventsByTable[event.Table]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		run, ok := stats.Runs[event.RunID]
		if !ok {
			run = &RunStatsEntry{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Runs[event.RunID] = run
		}
		run.Events++
		if event.Timestamp.After(run.LastSeen) {
			run.LastSeen = event.Timestamp
		}
		if event.Version != "" && run.Version == "" {
			run.Version = event.Version
		}
		if event.Build != nil {
			run.Entries += event.Build.Entries
			run.Skipped += event.Build.Skipped
		}
		if event.Error != nil {
			stats.Errors++
		}
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== BUFR Table Generation Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryRun, log.CategoryBuild, log.CategoryRow, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-8s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Table:")
	for _, table := range []log.Table{log.TableB, log.TableC, log.TableD} {
		if count := stats.EventsByTable[table]; count > 0 {
			fmt.Fprintf(w, "  %-8s %d\n", table.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	// Runs, oldest first
	ids := make([]string, 0, len(stats.Runs))
	for id := range stats.Runs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return stats.Runs[ids[i]].FirstSeen.Before(stats.Runs[ids[j]].FirstSeen)
	})

	fmt.Fprintf(w, "Runs: %d\n", len(ids))
	for _, id := range ids {
		run := stats.Runs[id]
		fmt.Fprintf(w, "  %s", shortenRunID(id))
		if run.Version != "" {
			fmt.Fprintf(w, " (version %s)", run.Version)
		}
		fmt.Fprintf(w, ": %d events, %d entries, %d skipped rows\n", run.Events, run.Entries, run.Skipped)
	}
	fmt.Fprintln(w)

	if stats.Errors > 0 {
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
