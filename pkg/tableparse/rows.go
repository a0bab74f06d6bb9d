package tableparse

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ElementRow is one raw Table B row. All fields are kept textual; decoding
// and numeric conversion happen in the table builders, after deprecated rows
// have been filtered out.
type ElementRow struct {
	Line           int
	Status         string
	FXY            string
	ClassName      string
	ElementName    string
	Unit           string
	Scale          string
	ReferenceValue string
	Bits           string
}

// OperatorRow is one raw Table C row.
type OperatorRow struct {
	Line                int
	Status              string
	FXY                 string
	OperatorName        string
	OperationDefinition string
}

// SequenceRow is one raw Table D row. FXY1 is the parent sequence identifier
// shared by all rows of one sequence; FXY2 is the child descriptor
// contributed by this row.
type SequenceRow struct {
	Line     int
	Status   string
	FXY1     string
	Category string
	Title    string
	SubTitle string
	FXY2     string
}

// Column names of the WMO text distribution. These are a fixed external
// contract; a missing column is a fatal parse error.
const (
	colStatus    = "Status"
	colFXY       = "FXY"
	colClassName = "ClassName_en"
	colElemName  = "ElementName_en"
	colUnit      = "BUFR_Unit"
	colScale     = "BUFR_Scale"
	colReference = "BUFR_ReferenceValue"
	colBits      = "BUFR_DataWidth_Bits"
	colFXY1      = "FXY1"
	colFXY2      = "FXY2"
	colCategory  = "CategoryOfSequences_en"
	colTitle     = "Title_en"
	colSubTitle  = "SubTitle_en"
)

// header maps column names to field indices for one CSV file.
type header map[string]int

func readHeader(r *csv.Reader, required ...string) (header, error) {
	record, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	h := make(header, len(record))
	for i, name := range record {
		h[name] = i
	}
	for _, name := range required {
		if _, ok := h[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return h, nil
}

func (h header) field(record []string, name string) string {
	return record[h[name]]
}

// ParseElementRows reads Table B rows from CSV input.
func ParseElementRows(r io.Reader) ([]ElementRow, error) {
	cr := csv.NewReader(r)
	h, err := readHeader(cr, colStatus, colFXY, colClassName, colElemName,
		colUnit, colScale, colReference, colBits)
	if err != nil {
		return nil, err
	}

	var rows []ElementRow
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, ElementRow{
			Line:           line,
			Status:         h.field(record, colStatus),
			FXY:            h.field(record, colFXY),
			ClassName:      h.field(record, colClassName),
			ElementName:    h.field(record, colElemName),
			Unit:           h.field(record, colUnit),
			Scale:          h.field(record, colScale),
			ReferenceValue: h.field(record, colReference),
			Bits:           h.field(record, colBits),
		})
	}
	return rows, nil
}

// ParseOperatorRows reads Table C rows from CSV input.
func ParseOperatorRows(r io.Reader) ([]OperatorRow, error) {
	cr := csv.NewReader(r)
	h, err := readHeader(cr, colStatus, colFXY, "OperatorName_en", "OperationDefinition_en")
	if err != nil {
		return nil, err
	}

	var rows []OperatorRow
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, OperatorRow{
			Line:                line,
			Status:              h.field(record, colStatus),
			FXY:                 h.field(record, colFXY),
			OperatorName:        h.field(record, "OperatorName_en"),
			OperationDefinition: h.field(record, "OperationDefinition_en"),
		})
	}
	return rows, nil
}

// ParseSequenceRows reads Table D rows from CSV input.
func ParseSequenceRows(r io.Reader) ([]SequenceRow, error) {
	cr := csv.NewReader(r)
	h, err := readHeader(cr, colStatus, colFXY1, colFXY2, colCategory, colTitle, colSubTitle)
	if err != nil {
		return nil, err
	}

	var rows []SequenceRow
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, SequenceRow{
			Line:     line,
			Status:   h.field(record, colStatus),
			FXY1:     h.field(record, colFXY1),
			Category: h.field(record, colCategory),
			Title:    h.field(record, colTitle),
			SubTitle: h.field(record, colSubTitle),
			FXY2:     h.field(record, colFXY2),
		})
	}
	return rows, nil
}

// LoadElementRows loads Table B rows from a file.
func LoadElementRows(path string) ([]ElementRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()
	rows, err := ParseElementRows(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rows, nil
}

// LoadOperatorRows loads Table C rows from a file.
func LoadOperatorRows(path string) ([]OperatorRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()
	rows, err := ParseOperatorRows(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rows, nil
}

// LoadSequenceRows loads Table D rows from a file.
func LoadSequenceRows(path string) ([]SequenceRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()
	rows, err := ParseSequenceRows(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rows, nil
}
