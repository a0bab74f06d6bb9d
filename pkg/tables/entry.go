package tables

// ElementEntry is a Table B row: a leaf element descriptor (F=0) with its
// numeric packing parameters.
//
// Entries with Bits >= 33 are character-string elements encoded by bit count
// alone; their Unit is always the sentinel "CCITT IA5".
type ElementEntry struct {
	XY             XY
	ClassName      string
	ElementName    string
	Scale          int
	ReferenceValue int
	Unit           string
	Bits           int
}

// OperatorEntry is a Table C row: an operator descriptor (F=2).
type OperatorEntry struct {
	XY                  OperatorXY
	OperatorName        string
	OperationDefinition string
}

// SequenceEntry is a Table D record: a named, ordered group of descriptors
// (F=3) representing a composite message structure. Elements is non-empty and
// preserves source order; no two sequences share the same XY.
type SequenceEntry struct {
	XY       XY
	Category string
	Title    string
	SubTitle string
	Elements []Descriptor
}
