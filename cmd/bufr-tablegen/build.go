package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bufrkit/bufr-go/pkg/tableparse"
	"github.com/bufrkit/bufr-go/pkg/tables"
)

// statusDeprecated marks rows excluded from all generated output.
const statusDeprecated = "Deprecated"

// ia5Unit is the unit sentinel for character-string elements, which are
// encoded by bit count alone rather than a numeric scale/reference pair.
const ia5Unit = "CCITT IA5"

// Skip records one row excluded by the deprecation filter.
type Skip struct {
	Line int
	FXY  string
}

// BuildTableB converts raw Table B rows into element entries, preserving
// source order and skipping deprecated rows. A malformed identifier, a
// malformed numeric field or a high-bit-width entry with a non-IA5 unit is a
// build-time fatal error.
func BuildTableB(rows []tableparse.ElementRow) ([]tables.ElementEntry, []Skip, error) {
	var entries []tables.ElementEntry
	var skipped []Skip
	for _, row := range rows {
		if row.Status == statusDeprecated {
			skipped = append(skipped, Skip{Line: row.Line, FXY: row.FXY})
			continue
		}

		fxy, err := strconv.Atoi(row.FXY)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: FXY %q: %w", row.Line, row.FXY, err)
		}
		xy, err := tables.DecodeXY(fxy)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", row.Line, err)
		}

		scale, err := strconv.Atoi(row.Scale)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: scale %q: %w", row.Line, row.Scale, err)
		}
		ref, err := strconv.Atoi(row.ReferenceValue)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: reference value %q: %w", row.Line, row.ReferenceValue, err)
		}
		bits, err := strconv.Atoi(row.Bits)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: data width %q: %w", row.Line, row.Bits, err)
		}

		// Elements wider than 32 bits carry no numeric interpretation;
		// anything but the IA5 sentinel means a corrupted source row.
		if bits >= 33 && row.Unit != ia5Unit {
			return nil, nil, fmt.Errorf("line %d: element %s: %d bits with unit %q, want %q",
				row.Line, row.FXY, bits, row.Unit, ia5Unit)
		}

		entries = append(entries, tables.ElementEntry{
			XY:             xy,
			ClassName:      row.ClassName,
			ElementName:    row.ElementName,
			Scale:          scale,
			ReferenceValue: ref,
			Unit:           row.Unit,
			Bits:           bits,
		})
	}
	return entries, skipped, nil
}

// BuildTableC converts raw Table C rows into operator entries, preserving
// source order and skipping deprecated rows.
func BuildTableC(rows []tableparse.OperatorRow) ([]tables.OperatorEntry, []Skip, error) {
	var entries []tables.OperatorEntry
	var skipped []Skip
	for _, row := range rows {
		if row.Status == statusDeprecated {
			skipped = append(skipped, Skip{Line: row.Line, FXY: row.FXY})
			continue
		}

		xy, err := tables.DecodeOperatorXY(row.FXY)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", row.Line, err)
		}

		entries = append(entries, tables.OperatorEntry{
			XY:                  xy,
			OperatorName:        row.OperatorName,
			OperationDefinition: row.OperationDefinition,
		})
	}
	return entries, skipped, nil
}

// BuildTableD folds raw Table D rows into sequence entries. Each contiguous
// run of rows sharing one FXY1 becomes a single entry whose Elements list
// holds the run's decoded FXY2 descriptors in source order. A parent
// identifier reappearing after its run has ended means the source is not
// grouped contiguously and aborts the build.
func BuildTableD(rows []tableparse.SequenceRow) ([]tables.SequenceEntry, []Skip, error) {
	acc := sequenceAccumulator{closed: make(map[string]bool)}
	var skipped []Skip
	for _, row := range rows {
		if row.Status == statusDeprecated {
			skipped = append(skipped, Skip{Line: row.Line, FXY: row.FXY1})
			continue
		}
		if err := acc.feed(row); err != nil {
			return nil, nil, err
		}
	}
	entries, err := acc.finish()
	if err != nil {
		return nil, nil, err
	}
	return entries, skipped, nil
}

// sequenceAccumulator is the Table D grouping state: the sequences closed so
// far plus at most one open group collecting rows for the current FXY1.
type sequenceAccumulator struct {
	entries []tables.SequenceEntry
	closed  map[string]bool
	openID  string
	open    *tables.SequenceEntry
}

func (a *sequenceAccumulator) feed(row tableparse.SequenceRow) error {
	child, err := decodeChild(row)
	if err != nil {
		return err
	}

	if a.open != nil && row.FXY1 == a.openID {
		a.open.Elements = append(a.open.Elements, child)
		return nil
	}

	if err := a.close(); err != nil {
		return fmt.Errorf("line %d: %w", row.Line, err)
	}

	fxy1, err := strconv.Atoi(row.FXY1)
	if err != nil {
		return fmt.Errorf("line %d: FXY1 %q: %w", row.Line, row.FXY1, err)
	}
	xy, err := tables.DecodeXY(fxy1)
	if err != nil {
		return fmt.Errorf("line %d: %w", row.Line, err)
	}

	a.openID = row.FXY1
	a.open = &tables.SequenceEntry{
		XY:       xy,
		Category: row.Category,
		Title:    trimTitle(row.Title),
		SubTitle: row.SubTitle,
		Elements: []tables.Descriptor{child},
	}
	return nil
}

// close finishes the open group, if any. A group that was already closed
// earlier in the run means the source interleaves sequences.
func (a *sequenceAccumulator) close() error {
	if a.open == nil {
		return nil
	}
	if a.closed[a.openID] {
		return fmt.Errorf("sequence %s is not contiguous: rows reappear after the group was closed", a.openID)
	}
	a.closed[a.openID] = true
	a.entries = append(a.entries, *a.open)
	a.open = nil
	return nil
}

// finish closes the trailing group and returns all sequences in source order.
func (a *sequenceAccumulator) finish() ([]tables.SequenceEntry, error) {
	if err := a.close(); err != nil {
		return nil, err
	}
	return a.entries, nil
}

func decodeChild(row tableparse.SequenceRow) (tables.Descriptor, error) {
	fxy2, err := strconv.Atoi(row.FXY2)
	if err != nil {
		return tables.Descriptor{}, fmt.Errorf("line %d: FXY2 %q: %w", row.Line, row.FXY2, err)
	}
	child, err := tables.DecodeDescriptor(fxy2)
	if err != nil {
		return tables.Descriptor{}, fmt.Errorf("line %d: %w", row.Line, err)
	}
	return child, nil
}

// trimTitle removes one leading and one trailing parenthesis, the WMO
// convention for sequence titles.
func trimTitle(title string) string {
	return strings.TrimSuffix(strings.TrimPrefix(title, "("), ")")
}
