package tables

import "fmt"

// ResolvedKind distinguishes the node types of a resolved descriptor tree.
type ResolvedKind uint8

const (
	// ResolvedElement is a Table B element reference.
	ResolvedElement ResolvedKind = 0
	// ResolvedOperator is a Table C operator reference.
	ResolvedOperator ResolvedKind = 1
	// ResolvedReplication is an F=1 replication group.
	ResolvedReplication ResolvedKind = 2
	// ResolvedSequence is an expanded Table D sequence.
	ResolvedSequence ResolvedKind = 3
)

// String returns the kind name.
func (k ResolvedKind) String() string {
	switch k {
	case ResolvedElement:
		return "ELEMENT"
	case ResolvedOperator:
		return "OPERATOR"
	case ResolvedReplication:
		return "REPLICATION"
	case ResolvedSequence:
		return "SEQUENCE"
	default:
		return "UNKNOWN"
	}
}

// Resolved is one node of a resolved descriptor tree. Exactly the fields for
// its Kind are set:
//
//   - ResolvedElement: Element
//   - ResolvedOperator: Operator
//   - ResolvedReplication: Count, DelayedBits, Children
//   - ResolvedSequence: Sequence, Children
type Resolved struct {
	Kind     ResolvedKind
	Element  *ElementEntry
	Operator XY
	Sequence *SequenceEntry

	// Count is the fixed replication count (Y of the F=1 descriptor);
	// zero for delayed replication.
	Count uint8

	// DelayedBits is the bit width of the delayed replication factor
	// element, zero for fixed replication.
	DelayedBits uint8

	Children []Resolved
}

// Resolve expands a descriptor list against the table set: element and
// operator references become leaves, sequences recurse into their bodies, and
// F=1 replication descriptors group the following X descriptors into a
// replication node. An unresolvable reference or a replication range running
// past the end of the list is an error.
func (s *Set) Resolve(descriptors []Descriptor) ([]Resolved, error) {
	var resolved []Resolved
	pos := 0
	for pos < len(descriptors) {
		d := descriptors[pos]
		if d.F != 1 {
			node, err := s.resolveOne(d)
			if err != nil {
				return nil, err
			}
			resolved = append(resolved, node)
			pos++
			continue
		}

		var delayedBits uint8
		if d.Y == 0 {
			// Delayed replication: the next descriptor names the
			// replication factor element (class 31).
			pos++
			if pos >= len(descriptors) {
				return nil, fmt.Errorf("delayed replication %s at end of descriptor list", d)
			}
			factor := descriptors[pos]
			switch factor {
			case Descriptor{F: 0, X: 31, Y: 0}:
				delayedBits = 1
			case Descriptor{F: 0, X: 31, Y: 1}:
				delayedBits = 8
			case Descriptor{F: 0, X: 31, Y: 2}:
				delayedBits = 16
			case Descriptor{F: 0, X: 31, Y: 3}:
				// JMA-local replication factor, 8 bits.
				delayedBits = 8
			default:
				return nil, fmt.Errorf("unsupported delayed replication factor %s", factor)
			}
		}
		pos++
		if pos+int(d.X) > len(descriptors) {
			return nil, fmt.Errorf("replication %s range out of bounds", d)
		}
		children, err := s.Resolve(descriptors[pos : pos+int(d.X)])
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, Resolved{
			Kind:        ResolvedReplication,
			Count:       d.Y,
			DelayedBits: delayedBits,
			Children:    children,
		})
		pos += int(d.X)
	}
	return resolved, nil
}

func (s *Set) resolveOne(d Descriptor) (Resolved, error) {
	switch d.F {
	case 0:
		e, ok := s.Element(d.XY())
		if !ok {
			return Resolved{}, fmt.Errorf("Table B entry not found for %s", d)
		}
		return Resolved{Kind: ResolvedElement, Element: e}, nil
	case 2:
		return Resolved{Kind: ResolvedOperator, Operator: d.XY()}, nil
	case 3:
		seq, ok := s.Sequence(d.XY())
		if !ok {
			return Resolved{}, fmt.Errorf("Table D entry not found for %s", d)
		}
		children, err := s.Resolve(seq.Elements)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{Kind: ResolvedSequence, Sequence: seq, Children: children}, nil
	default:
		return Resolved{}, fmt.Errorf("unsupported descriptor class F=%d in %s", d.F, d)
	}
}
