// Command bufr-tablegen regenerates the static BUFR descriptor tables from
// the WMO text distribution.
//
// The run is described by a YAML manifest naming the three source files and
// the output directory:
//
//	version: "41"
//	output: pkg/tables
//	tables:
//	  b: BUFR4/txt/BUFRCREX_TableB_en.txt
//	  c: BUFR4/txt/BUFR_TableC_en.txt
//	  d: BUFR4/txt/BUFR_TableD_en.txt
//
// Each invocation rebuilds all three tables from scratch; there is no
// incremental mode. Any malformed row aborts the run, leaving files written
// for earlier tables in place.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bufrkit/bufr-go/pkg/log"
	"github.com/bufrkit/bufr-go/pkg/tableparse"
	"github.com/google/uuid"
	"golang.org/x/tools/imports"
)

func main() {
	manifestPath := flag.String("manifest", "", "Path to the generation manifest YAML")
	outputDir := flag.String("output", "", "Output directory (overrides the manifest)")
	logPath := flag.String("log", "", "Write generation events to a .blog file")
	verbose := flag.Bool("verbose", false, "Log generation events to the console")
	flag.Parse()

	if *manifestPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: bufr-tablegen -manifest <tables.yaml> [-output <dir>] [-log <file.blog>] [-verbose]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	logger, closeLogger, err := buildLogger(*logPath, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	err = run(*manifestPath, *outputDir, logger)
	closeLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// buildLogger assembles the event logger from the -log and -verbose flags.
func buildLogger(logPath string, verbose bool) (log.Logger, func(), error) {
	var loggers []log.Logger
	closer := func() {}

	if logPath != "" {
		fl, err := log.NewFileLogger(logPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		loggers = append(loggers, fl)
		closer = func() { _ = fl.Close() }
	}
	if verbose {
		loggers = append(loggers, log.NewSlogAdapter(slog.Default()))
	}

	switch len(loggers) {
	case 0:
		return log.NoopLogger{}, closer, nil
	case 1:
		return loggers[0], closer, nil
	default:
		return log.NewMultiLogger(loggers...), closer, nil
	}
}

// generation carries the per-run context shared by the three builders.
type generation struct {
	manifest *tableparse.Manifest
	output   string
	runID    string
	logger   log.Logger
}

func run(manifestPath, outputOverride string, logger log.Logger) error {
	m, err := tableparse.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	output := m.Output
	if outputOverride != "" {
		output = outputOverride
	}
	if output == "" {
		return fmt.Errorf("no output directory: set output in the manifest or pass -output")
	}
	if err := os.MkdirAll(output, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	g := &generation{
		manifest: m,
		output:   output,
		runID:    uuid.New().String(),
		logger:   logger,
	}

	g.logRun("started", manifestPath)

	if err := g.buildTableB(); err != nil {
		return g.fail(log.TableB, "building Table B", err)
	}
	if err := g.buildTableC(); err != nil {
		return g.fail(log.TableC, "building Table C", err)
	}
	if err := g.buildTableD(); err != nil {
		return g.fail(log.TableD, "building Table D", err)
	}

	g.logRun("finished", manifestPath)
	return nil
}

func (g *generation) buildTableB() error {
	source := g.manifest.Tables.B
	rows, err := tableparse.LoadElementRows(source)
	if err != nil {
		return err
	}
	entries, skipped, err := BuildTableB(rows)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	g.logSkips(log.TableB, source, skipped)

	code := GenerateTableB(entries, g.manifest.Package, filepath.Base(source))
	outPath := filepath.Join(g.output, "table_b_gen.go")
	if err := writeFormatted(outPath, code); err != nil {
		return err
	}
	g.logBuild(log.TableB, source, len(rows), len(skipped), len(entries), outPath)
	fmt.Printf("  generated %s (%d entries)\n", outPath, len(entries))
	return nil
}

func (g *generation) buildTableC() error {
	source := g.manifest.Tables.C
	rows, err := tableparse.LoadOperatorRows(source)
	if err != nil {
		return err
	}
	entries, skipped, err := BuildTableC(rows)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	g.logSkips(log.TableC, source, skipped)

	code := GenerateTableC(entries, g.manifest.Package, filepath.Base(source))
	outPath := filepath.Join(g.output, "table_c_gen.go")
	if err := writeFormatted(outPath, code); err != nil {
		return err
	}
	g.logBuild(log.TableC, source, len(rows), len(skipped), len(entries), outPath)
	fmt.Printf("  generated %s (%d entries)\n", outPath, len(entries))
	return nil
}

func (g *generation) buildTableD() error {
	source := g.manifest.Tables.D
	rows, err := tableparse.LoadSequenceRows(source)
	if err != nil {
		return err
	}
	entries, skipped, err := BuildTableD(rows)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	g.logSkips(log.TableD, source, skipped)

	code := GenerateTableD(entries, g.manifest.Package, filepath.Base(source))
	outPath := filepath.Join(g.output, "table_d_gen.go")
	if err := writeFormatted(outPath, code); err != nil {
		return err
	}
	g.logBuild(log.TableD, source, len(rows), len(skipped), len(entries), outPath)
	fmt.Printf("  generated %s (%d sequences)\n", outPath, len(entries))
	return nil
}

func (g *generation) logRun(state, manifestPath string) {
	g.logger.Log(log.Event{
		Timestamp: time.Now(),
		RunID:     g.runID,
		Category:  log.CategoryRun,
		Version:   g.manifest.Version,
		Run:       &log.RunEvent{State: state, Manifest: manifestPath},
	})
}

func (g *generation) logSkips(table log.Table, source string, skipped []Skip) {
	for _, s := range skipped {
		g.logger.Log(log.Event{
			Timestamp: time.Now(),
			RunID:     g.runID,
			Category:  log.CategoryRow,
			Table:     table,
			Version:   g.manifest.Version,
			Source:    source,
			Row:       &log.RowEvent{Line: s.Line, FXY: s.FXY, Reason: "deprecated"},
		})
	}
}

func (g *generation) logBuild(table log.Table, source string, rows, skipped, entries int, output string) {
	g.logger.Log(log.Event{
		Timestamp: time.Now(),
		RunID:     g.runID,
		Category:  log.CategoryBuild,
		Table:     table,
		Version:   g.manifest.Version,
		Source:    source,
		Build:     &log.BuildEvent{Rows: rows, Skipped: skipped, Entries: entries, Output: output},
	})
}

// fail records the fatal error in the event log before propagating it.
func (g *generation) fail(table log.Table, context string, err error) error {
	g.logger.Log(log.Event{
		Timestamp: time.Now(),
		RunID:     g.runID,
		Category:  log.CategoryError,
		Table:     table,
		Version:   g.manifest.Version,
		Error:     &log.ErrorEventData{Message: err.Error(), Context: context},
	})
	return fmt.Errorf("%s: %w", context, err)
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
