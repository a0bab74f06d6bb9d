package main

import (
	"strings"
	"testing"

	"github.com/bufrkit/bufr-go/pkg/tableparse"
	"github.com/bufrkit/bufr-go/pkg/tables"
)

func elementRow(line int, fxy, name, unit, scale, ref, bits, status string) tableparse.ElementRow {
	return tableparse.ElementRow{
		Line:           line,
		Status:         status,
		FXY:            fxy,
		ClassName:      "Identification",
		ElementName:    name,
		Unit:           unit,
		Scale:          scale,
		ReferenceValue: ref,
		Bits:           bits,
	}
}

func TestBuildTableBFiltersDeprecated(t *testing.T) {
	rows := []tableparse.ElementRow{
		elementRow(2, "001001", "WMO block number", "Numeric", "0", "0", "7", "Operational"),
		elementRow(3, "001003", "WMO Region number", "Numeric", "0", "0", "3", "Deprecated"),
		elementRow(4, "001002", "WMO station number", "Numeric", "0", "0", "10", "Operational"),
	}

	entries, skipped, err := BuildTableB(rows)
	if err != nil {
		t.Fatalf("BuildTableB failed: %v", err)
	}

	// Output is one-to-one with non-deprecated rows, in source order.
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].XY != (tables.XY{X: 1, Y: 1}) || entries[1].XY != (tables.XY{X: 1, Y: 2}) {
		t.Errorf("entries out of order: %+v", entries)
	}
	if len(skipped) != 1 || skipped[0].Line != 3 || skipped[0].FXY != "001003" {
		t.Errorf("skipped = %+v", skipped)
	}
}

func TestBuildTableBFields(t *testing.T) {
	rows := []tableparse.ElementRow{
		elementRow(2, "012101", "Temperature/air temperature", "K", "2", "0", "16", "Operational"),
	}

	entries, _, err := BuildTableB(rows)
	if err != nil {
		t.Fatalf("BuildTableB failed: %v", err)
	}
	e := entries[0]
	if e.XY != (tables.XY{X: 12, Y: 101}) {
		t.Errorf("XY = %+v", e.XY)
	}
	if e.Scale != 2 || e.ReferenceValue != 0 || e.Bits != 16 || e.Unit != "K" {
		t.Errorf("entry = %+v", e)
	}
}

func TestBuildTableBNegativeScale(t *testing.T) {
	rows := []tableparse.ElementRow{
		elementRow(2, "007004", "Pressure", "Pa", "-1", "0", "14", "Operational"),
	}
	entries, _, err := BuildTableB(rows)
	if err != nil {
		t.Fatalf("BuildTableB failed: %v", err)
	}
	if entries[0].Scale != -1 {
		t.Errorf("Scale = %d, want -1", entries[0].Scale)
	}
}

func TestBuildTableBIA5Invariant(t *testing.T) {
	// A wide element with a non-IA5 unit is a build-time defect.
	rows := []tableparse.ElementRow{
		elementRow(2, "021001", "Horizontal reflectivity", "dBZ", "0", "0", "40", "Operational"),
	}
	_, _, err := BuildTableB(rows)
	if err == nil {
		t.Fatal("expected IA5 invariant violation")
	}
	if !strings.Contains(err.Error(), "CCITT IA5") {
		t.Errorf("error should name the expected unit, got: %v", err)
	}

	// The same width with the IA5 sentinel is fine.
	rows[0].Unit = "CCITT IA5"
	entries, _, err := BuildTableB(rows)
	if err != nil {
		t.Fatalf("BuildTableB failed: %v", err)
	}
	if entries[0].Bits != 40 {
		t.Errorf("Bits = %d, want 40", entries[0].Bits)
	}
}

func TestBuildTableBMalformedFXY(t *testing.T) {
	rows := []tableparse.ElementRow{
		elementRow(2, "00x001", "Broken", "Numeric", "0", "0", "7", "Operational"),
	}
	if _, _, err := BuildTableB(rows); err == nil {
		t.Fatal("expected error for malformed FXY")
	}

	rows = []tableparse.ElementRow{
		elementRow(2, "1000001", "Too long", "Numeric", "0", "0", "7", "Operational"),
	}
	if _, _, err := BuildTableB(rows); err == nil {
		t.Fatal("expected error for out-of-range FXY")
	}
}

func TestBuildTableC(t *testing.T) {
	rows := []tableparse.OperatorRow{
		{Line: 2, Status: "Operational", FXY: "201YYY", OperatorName: "Change data width", OperationDefinition: "Add (YYY-128) bits"},
		{Line: 3, Status: "Deprecated", FXY: "203YYY", OperatorName: "Old operator"},
		{Line: 4, Status: "Operational", FXY: "222000", OperatorName: "Quality information follows"},
	}

	entries, skipped, err := BuildTableC(rows)
	if err != nil {
		t.Fatalf("BuildTableC failed: %v", err)
	}
	if len(entries) != 2 || len(skipped) != 1 {
		t.Fatalf("entries/skipped = %d/%d, want 2/1", len(entries), len(skipped))
	}

	// Wildcard operator: Y absent.
	if entries[0].XY != (tables.OperatorXY{X: 1}) {
		t.Errorf("entries[0].XY = %+v", entries[0].XY)
	}
	// Fixed operator: Y present.
	if entries[1].XY != (tables.OperatorXY{X: 22, Y: 0, HasY: true}) {
		t.Errorf("entries[1].XY = %+v", entries[1].XY)
	}
}

func TestBuildTableCRejectsNonOperator(t *testing.T) {
	rows := []tableparse.OperatorRow{
		{Line: 2, Status: "Operational", FXY: "301001", OperatorName: "Not an operator"},
	}
	if _, _, err := BuildTableC(rows); err == nil {
		t.Fatal("expected error for non-operator class digit")
	}
}

func sequenceRow(line int, fxy1, title, fxy2, status string) tableparse.SequenceRow {
	return tableparse.SequenceRow{
		Line:     line,
		Status:   status,
		FXY1:     fxy1,
		Category: "BUFR table entries sequences",
		Title:    title,
		FXY2:     fxy2,
	}
}

func TestBuildTableDGroupsRuns(t *testing.T) {
	rows := []tableparse.SequenceRow{
		sequenceRow(2, "300002", "(Table B entry)", "001001", "Operational"),
		sequenceRow(3, "300002", "", "002002", "Operational"),
		sequenceRow(4, "300003", "(Table B entry - defining data item)", "001002", "Operational"),
	}

	entries, _, err := BuildTableD(rows)
	if err != nil {
		t.Fatalf("BuildTableD failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	first := entries[0]
	if first.XY != (tables.XY{X: 0, Y: 2}) {
		t.Errorf("first.XY = %+v", first.XY)
	}
	if len(first.Elements) != 2 ||
		first.Elements[0] != (tables.Descriptor{F: 0, X: 1, Y: 1}) ||
		first.Elements[1] != (tables.Descriptor{F: 0, X: 2, Y: 2}) {
		t.Errorf("first.Elements = %+v", first.Elements)
	}
	// Title loses one pair of parentheses; metadata comes from the run's
	// first row.
	if first.Title != "Table B entry" {
		t.Errorf("first.Title = %q", first.Title)
	}

	second := entries[1]
	if second.XY != (tables.XY{X: 0, Y: 3}) {
		t.Errorf("second.XY = %+v", second.XY)
	}
	if len(second.Elements) != 1 || second.Elements[0] != (tables.Descriptor{F: 0, X: 1, Y: 2}) {
		t.Errorf("second.Elements = %+v", second.Elements)
	}
}

func TestBuildTableDNonContiguous(t *testing.T) {
	// A second run of 300002 after 300003 closed it: fatal.
	rows := []tableparse.SequenceRow{
		sequenceRow(2, "300002", "", "001001", "Operational"),
		sequenceRow(3, "300002", "", "001002", "Operational"),
		sequenceRow(4, "300003", "", "001002", "Operational"),
		sequenceRow(5, "300002", "", "001003", "Operational"),
	}
	_, _, err := BuildTableD(rows)
	if err == nil {
		t.Fatal("expected non-contiguity error")
	}
	if !strings.Contains(err.Error(), "300002") {
		t.Errorf("error should name the offending sequence, got: %v", err)
	}
}

func TestBuildTableDSkipsDeprecated(t *testing.T) {
	rows := []tableparse.SequenceRow{
		sequenceRow(2, "300002", "", "001001", "Operational"),
		sequenceRow(3, "300010", "", "001001", "Deprecated"),
		sequenceRow(4, "300010", "", "001002", "Deprecated"),
		sequenceRow(5, "300003", "", "001002", "Operational"),
	}

	entries, skipped, err := BuildTableD(rows)
	if err != nil {
		t.Fatalf("BuildTableD failed: %v", err)
	}
	// The record count is the number of distinct non-deprecated parents.
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if len(skipped) != 2 {
		t.Errorf("len(skipped) = %d, want 2", len(skipped))
	}
}

func TestBuildTableDPartition(t *testing.T) {
	// Every non-deprecated row contributes exactly one child descriptor to
	// exactly one sequence.
	rows := []tableparse.SequenceRow{
		sequenceRow(2, "301001", "", "001001", "Operational"),
		sequenceRow(3, "301001", "", "001002", "Operational"),
		sequenceRow(4, "301011", "", "004001", "Operational"),
		sequenceRow(5, "301011", "", "004002", "Operational"),
		sequenceRow(6, "301011", "", "004003", "Operational"),
		sequenceRow(7, "309052", "", "301001", "Operational"),
	}

	entries, _, err := BuildTableD(rows)
	if err != nil {
		t.Fatalf("BuildTableD failed: %v", err)
	}

	total := 0
	for _, e := range entries {
		if len(e.Elements) == 0 {
			t.Errorf("sequence %v has no elements", e.XY)
		}
		total += len(e.Elements)
	}
	if total != len(rows) {
		t.Errorf("total children = %d, want %d", total, len(rows))
	}
	if len(entries) != 3 {
		t.Errorf("len(entries) = %d, want 3", len(entries))
	}
	// Child F digits survive decoding: the last sequence references
	// another sequence (F=3).
	last := entries[2]
	if last.Elements[0] != (tables.Descriptor{F: 3, X: 1, Y: 1}) {
		t.Errorf("last.Elements[0] = %+v", last.Elements[0])
	}
}

func TestBuildTableDMalformedIdentifiers(t *testing.T) {
	rows := []tableparse.SequenceRow{
		sequenceRow(2, "3000x2", "", "001001", "Operational"),
	}
	if _, _, err := BuildTableD(rows); err == nil {
		t.Fatal("expected error for malformed FXY1")
	}

	rows = []tableparse.SequenceRow{
		sequenceRow(2, "300002", "", "bogus", "Operational"),
	}
	if _, _, err := BuildTableD(rows); err == nil {
		t.Fatal("expected error for malformed FXY2")
	}
}
