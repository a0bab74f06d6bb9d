package main

import (
	"strings"

	"github.com/bufrkit/bufr-go/pkg/tables"
)

// GenerateTableB renders the Table B source file. The declared array length
// is exactly len(entries).
func GenerateTableB(entries []tables.ElementEntry, pkg, source string) string {
	data := tableBData{fileMeta: newFileMeta(pkg, source)}
	data.Entries = make([]tableBEntryData, 0, len(entries))
	for _, e := range entries {
		data.Entries = append(data.Entries, tableBEntryData{
			X:           e.XY.X,
			Y:           e.XY.Y,
			ClassName:   e.ClassName,
			ElementName: e.ElementName,
			Scale:       e.Scale,
			Reference:   e.ReferenceValue,
			Bits:        e.Bits,
			Unit:        e.Unit,
		})
	}

	var b strings.Builder
	renderTemplate(&b, "tableB", data)
	return b.String()
}

// GenerateTableC renders the Table C source file.
func GenerateTableC(entries []tables.OperatorEntry, pkg, source string) string {
	data := tableCData{fileMeta: newFileMeta(pkg, source)}
	data.Entries = make([]tableCEntryData, 0, len(entries))
	for _, e := range entries {
		data.Entries = append(data.Entries, tableCEntryData{
			X:                   e.XY.X,
			Y:                   e.XY.Y,
			HasY:                e.XY.HasY,
			OperatorName:        e.OperatorName,
			OperationDefinition: e.OperationDefinition,
		})
	}

	var b strings.Builder
	renderTemplate(&b, "tableC", data)
	return b.String()
}

// GenerateTableD renders the Table D source file. The declared array length
// is the sequence count after grouping, not the source row count.
func GenerateTableD(entries []tables.SequenceEntry, pkg, source string) string {
	data := tableDData{fileMeta: newFileMeta(pkg, source)}
	data.Entries = make([]tableDEntryData, 0, len(entries))
	for _, e := range entries {
		elements := make([]descriptorData, 0, len(e.Elements))
		for _, d := range e.Elements {
			elements = append(elements, descriptorData{F: d.F, X: d.X, Y: d.Y})
		}
		data.Entries = append(data.Entries, tableDEntryData{
			X:        e.XY.X,
			Y:        e.XY.Y,
			Category: e.Category,
			Title:    e.Title,
			SubTitle: e.SubTitle,
			Elements: elements,
		})
	}

	var b strings.Builder
	renderTemplate(&b, "tableD", data)
	return b.String()
}
