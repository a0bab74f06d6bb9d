package tables

// Set is a keyed lookup view over the three BUFR tables. It is built once
// from the generated static arrays and never mutated afterwards.
type Set struct {
	B map[XY]*ElementEntry
	C map[OperatorXY]*OperatorEntry
	D map[XY]*SequenceEntry
}

// NewSet builds lookup maps over the given table slices. The entry data is
// not copied; the slices must not be modified after the call.
func NewSet(b []ElementEntry, c []OperatorEntry, d []SequenceEntry) *Set {
	s := &Set{
		B: make(map[XY]*ElementEntry, len(b)),
		C: make(map[OperatorXY]*OperatorEntry, len(c)),
		D: make(map[XY]*SequenceEntry, len(d)),
	}
	for i := range b {
		s.B[b[i].XY] = &b[i]
	}
	for i := range c {
		s.C[c[i].XY] = &c[i]
	}
	for i := range d {
		s.D[d[i].XY] = &d[i]
	}
	return s
}

// Element looks up a Table B entry by coordinate.
func (s *Set) Element(xy XY) (*ElementEntry, bool) {
	e, ok := s.B[xy]
	return e, ok
}

// Operator looks up a Table C entry. A miss on a fixed (x, y) coordinate
// falls back to the wildcard entry for the operator class, if one exists.
func (s *Set) Operator(xy OperatorXY) (*OperatorEntry, bool) {
	if e, ok := s.C[xy]; ok {
		return e, true
	}
	if xy.HasY {
		if e, ok := s.C[OperatorXY{X: xy.X}]; ok {
			return e, true
		}
	}
	return nil, false
}

// Sequence looks up a Table D entry by coordinate.
func (s *Set) Sequence(xy XY) (*SequenceEntry, bool) {
	e, ok := s.D[xy]
	return e, ok
}
