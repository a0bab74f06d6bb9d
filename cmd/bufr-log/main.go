// Command bufr-log is a tool for viewing and analyzing bufr-tablegen log
// files.
//
// Log files are created by running bufr-tablegen with the -log flag.
//
// Usage:
//
//	bufr-log <command> [flags] <file.blog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSONL or CSV format
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	bufr-log view tablegen.blog
//
//	# View only Table D events
//	bufr-log view -table d tablegen.blog
//
//	# Export to JSONL
//	bufr-log export -format jsonl tablegen.blog
//
//	# Show statistics
//	bufr-log stats tablegen.blog
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bufrkit/bufr-go/cmd/bufr-log/commands"
	"github.com/bufrkit/bufr-go/pkg/log"
)

const usage = `bufr-log - BUFR Table Generation Log Analyzer

Usage:
  bufr-log <command> [flags] <file.blog>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSONL or CSV format
  stats    Show statistics about the log file

Use "bufr-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	runID := fs.String("run-id", "", "Filter by run ID")
	table := fs.String("table", "", "Filter by table (b, c, d)")
	category := fs.String("category", "", "Filter by category (run, build, row, error)")
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, "bufr-log view - View log file in human-readable format\n\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	path := requirePath(fs)

	filter := log.Filter{RunID: *runID}
	if *table != "" {
		t, err := parseTable(*table)
		if err != nil {
			fatal(err)
		}
		filter.Table = &t
	}
	if *category != "" {
		c, err := parseCategory(*category)
		if err != nil {
			fatal(err)
		}
		filter.Category = &c
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fatal(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default stdout)")
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, "bufr-log export - Export log file to JSONL or CSV format\n\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	path := requirePath(fs)
	if err := commands.RunExport(path, *format, *output); err != nil {
		fatal(err)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, "bufr-log stats - Show statistics about the log file\n\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	path := requirePath(fs)
	if err := commands.RunStats(path, os.Stdout); err != nil {
		fatal(err)
	}
}

func requirePath(fs *flag.FlagSet) string {
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func parseTable(s string) (log.Table, error) {
	switch strings.ToLower(s) {
	case "b":
		return log.TableB, nil
	case "c":
		return log.TableC, nil
	case "d":
		return log.TableD, nil
	default:
		return 0, fmt.Errorf("unknown table: %s (want b, c or d)", s)
	}
}

func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "run":
		return log.CategoryRun, nil
	case "build":
		return log.CategoryBuild, nil
	case "row":
		return log.CategoryRow, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("unknown category: %s (want run, build, row or error)", s)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
