package log

import "time"

// Event represents a generation log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID uniquely identifies the generation run (UUID).
	RunID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Table this event relates to (TableNone for run-level events).
	Table Table `cbor:"4,keyasint,omitempty"`

	// Version is the WMO table version label, if known.
	Version string `cbor:"5,keyasint,omitempty"`

	// Source is the source file the event relates to.
	Source string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Run   *RunEvent       `cbor:"10,keyasint,omitempty"` // Run lifecycle
	Build *BuildEvent     `cbor:"11,keyasint,omitempty"` // Per-table build result
	Row   *RowEvent       `cbor:"12,keyasint,omitempty"` // Per-row diagnostics
	Error *ErrorEventData `cbor:"13,keyasint,omitempty"` // Fatal errors
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryRun indicates a run lifecycle event.
	CategoryRun Category = 0
	// CategoryBuild indicates a per-table build event.
	CategoryBuild Category = 1
	// CategoryRow indicates a per-row diagnostic.
	CategoryRow Category = 2
	// CategoryError indicates a fatal error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryRun:
		return "RUN"
	case CategoryBuild:
		return "BUILD"
	case CategoryRow:
		return "ROW"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Table identifies which BUFR table an event relates to.
type Table uint8

const (
	// TableNone marks run-level events not tied to one table.
	TableNone Table = 0
	// TableB is the element descriptor table.
	TableB Table = 1
	// TableC is the operator descriptor table.
	TableC Table = 2
	// TableD is the sequence descriptor table.
	TableD Table = 3
)

// String returns the table name.
func (t Table) String() string {
	switch t {
	case TableNone:
		return "-"
	case TableB:
		return "B"
	case TableC:
		return "C"
	case TableD:
		return "D"
	default:
		return "UNKNOWN"
	}
}

// RunEvent captures run lifecycle transitions.
type RunEvent struct {
	// State is the new run state ("started" or "finished").
	State string `cbor:"1,keyasint"`

	// Manifest is the manifest path the run was invoked with.
	Manifest string `cbor:"2,keyasint,omitempty"`
}

// BuildEvent captures the result of building one table.
type BuildEvent struct {
	// Rows is the number of source rows read (pre-filtering).
	Rows int `cbor:"1,keyasint"`

	// Skipped is the number of deprecated rows excluded.
	Skipped int `cbor:"2,keyasint"`

	// Entries is the number of entries written. For Table D this is the
	// sequence count after grouping, not the row count.
	Entries int `cbor:"3,keyasint"`

	// Output is the path of the generated file.
	Output string `cbor:"4,keyasint,omitempty"`
}

// RowEvent captures a per-row diagnostic, such as a skipped deprecated row.
type RowEvent struct {
	// Line is the 1-based source line number.
	Line int `cbor:"1,keyasint"`

	// FXY is the row's packed identifier as it appears in the source.
	FXY string `cbor:"2,keyasint,omitempty"`

	// Reason describes why the row was skipped.
	Reason string `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData captures a fatal generation error.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`

	// Line is the offending source line, if known (0 otherwise).
	Line int `cbor:"3,keyasint,omitempty"`
}
