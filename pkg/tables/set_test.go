package tables_test

import (
	"testing"

	"github.com/bufrkit/bufr-go/pkg/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSet() *tables.Set {
	b := []tables.ElementEntry{
		{XY: tables.XY{X: 1, Y: 1}, ClassName: "Identification", ElementName: "WMO block number", Unit: "Numeric", Bits: 7},
		{XY: tables.XY{X: 1, Y: 2}, ClassName: "Identification", ElementName: "WMO station number", Unit: "Numeric", Bits: 10},
		{XY: tables.XY{X: 2, Y: 2}, ClassName: "Instrumentation", ElementName: "Type of instrumentation for wind measurement", Unit: "Flag table", Bits: 4},
		{XY: tables.XY{X: 31, Y: 1}, ClassName: "Data description operator qualifiers", ElementName: "Delayed descriptor replication factor", Unit: "Numeric", Bits: 8},
	}
	c := []tables.OperatorEntry{
		{XY: tables.OperatorXY{X: 1}, OperatorName: "Change data width"},
		{XY: tables.OperatorXY{X: 22, Y: 0, HasY: true}, OperatorName: "Quality information follows"},
	}
	d := []tables.SequenceEntry{
		{
			XY:       tables.XY{X: 0, Y: 2},
			Category: "Location and identification sequences",
			Title:    "Identification",
			Elements: []tables.Descriptor{{F: 0, X: 1, Y: 1}, {F: 0, X: 1, Y: 2}},
		},
	}
	return tables.NewSet(b, c, d)
}

func TestSetLookup(t *testing.T) {
	s := testSet()

	e, ok := s.Element(tables.XY{X: 1, Y: 2})
	require.True(t, ok)
	assert.Equal(t, "WMO station number", e.ElementName)

	_, ok = s.Element(tables.XY{X: 9, Y: 9})
	assert.False(t, ok)

	seq, ok := s.Sequence(tables.XY{X: 0, Y: 2})
	require.True(t, ok)
	assert.Len(t, seq.Elements, 2)
}

func TestSetOperatorWildcardFallback(t *testing.T) {
	s := testSet()

	// Exact match.
	op, ok := s.Operator(tables.OperatorXY{X: 22, Y: 0, HasY: true})
	require.True(t, ok)
	assert.Equal(t, "Quality information follows", op.OperatorName)

	// 201132 has no fixed entry; the wildcard 201YYY entry covers it.
	op, ok = s.Operator(tables.OperatorXY{X: 1, Y: 132, HasY: true})
	require.True(t, ok)
	assert.Equal(t, "Change data width", op.OperatorName)

	_, ok = s.Operator(tables.OperatorXY{X: 63, Y: 0, HasY: true})
	assert.False(t, ok)
}

func TestResolveSequence(t *testing.T) {
	s := testSet()

	resolved, err := s.Resolve([]tables.Descriptor{{F: 3, X: 0, Y: 2}, {F: 2, X: 22, Y: 0}})
	require.NoError(t, err)
	require.Len(t, resolved, 2)

	seq := resolved[0]
	assert.Equal(t, tables.ResolvedSequence, seq.Kind)
	require.Len(t, seq.Children, 2)
	assert.Equal(t, tables.ResolvedElement, seq.Children[0].Kind)
	assert.Equal(t, "WMO block number", seq.Children[0].Element.ElementName)

	assert.Equal(t, tables.ResolvedOperator, resolved[1].Kind)
	assert.Equal(t, tables.XY{X: 22, Y: 0}, resolved[1].Operator)
}

func TestResolveFixedReplication(t *testing.T) {
	s := testSet()

	// 102002: replicate the next two descriptors twice.
	resolved, err := s.Resolve([]tables.Descriptor{
		{F: 1, X: 2, Y: 2},
		{F: 0, X: 1, Y: 1},
		{F: 0, X: 1, Y: 2},
	})
	require.NoError(t, err)
	require.Len(t, resolved, 1)

	rep := resolved[0]
	assert.Equal(t, tables.ResolvedReplication, rep.Kind)
	assert.Equal(t, uint8(2), rep.Count)
	assert.Equal(t, uint8(0), rep.DelayedBits)
	assert.Len(t, rep.Children, 2)
}

func TestResolveDelayedReplication(t *testing.T) {
	s := testSet()

	// 101000 031001: delayed replication with an 8-bit factor.
	resolved, err := s.Resolve([]tables.Descriptor{
		{F: 1, X: 1, Y: 0},
		{F: 0, X: 31, Y: 1},
		{F: 0, X: 1, Y: 1},
	})
	require.NoError(t, err)
	require.Len(t, resolved, 1)

	rep := resolved[0]
	assert.Equal(t, tables.ResolvedReplication, rep.Kind)
	assert.Equal(t, uint8(0), rep.Count)
	assert.Equal(t, uint8(8), rep.DelayedBits)
	require.Len(t, rep.Children, 1)
	assert.Equal(t, tables.ResolvedElement, rep.Children[0].Kind)
}

func TestResolveErrors(t *testing.T) {
	s := testSet()

	// Unknown Table B reference.
	_, err := s.Resolve([]tables.Descriptor{{F: 0, X: 9, Y: 9}})
	assert.Error(t, err)

	// Unknown Table D reference.
	_, err = s.Resolve([]tables.Descriptor{{F: 3, X: 9, Y: 9}})
	assert.Error(t, err)

	// Replication range past the end of the list.
	_, err = s.Resolve([]tables.Descriptor{{F: 1, X: 3, Y: 1}, {F: 0, X: 1, Y: 1}})
	assert.Error(t, err)

	// Unsupported delayed replication factor.
	_, err = s.Resolve([]tables.Descriptor{
		{F: 1, X: 1, Y: 0},
		{F: 0, X: 31, Y: 21},
		{F: 0, X: 1, Y: 1},
	})
	assert.Error(t, err)
}
