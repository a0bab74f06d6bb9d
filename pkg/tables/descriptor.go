package tables

import (
	"fmt"
	"strconv"
	"strings"
)

// XY identifies a class and an element within that class.
// It is the coordinate of a Table B element (F=0) or Table D sequence (F=3).
type XY struct {
	X uint8
	Y uint8
}

// FXY returns the packed decimal form x*1000 + y (F implicitly 0).
func (xy XY) FXY() int {
	return int(xy.X)*1000 + int(xy.Y)
}

// String returns the coordinate as a five-digit XXYYY identifier.
func (xy XY) String() string {
	return fmt.Sprintf("%02d%03d", xy.X, xy.Y)
}

// Descriptor references an element (F=0), operator (F=2) or sequence (F=3)
// inside a sequence body. F=1 is descriptor replication.
type Descriptor struct {
	F uint8
	X uint8
	Y uint8
}

// XY returns the descriptor's class/element coordinate.
func (d Descriptor) XY() XY {
	return XY{X: d.X, Y: d.Y}
}

// FXY returns the packed decimal form f*100000 + x*1000 + y.
func (d Descriptor) FXY() int {
	return int(d.F)*100000 + int(d.X)*1000 + int(d.Y)
}

// String returns the descriptor as a six-digit FXXYYY identifier.
func (d Descriptor) String() string {
	return fmt.Sprintf("%d%02d%03d", d.F, d.X, d.Y)
}

// OperatorXY identifies a Table C operator. Y is absent (HasY false) for
// wildcard operators whose source identifier ends in "YYY" and that apply
// across the whole operand range rather than one fixed value.
type OperatorXY struct {
	X    uint8
	Y    uint8
	HasY bool
}

// String returns the operator coordinate, with "YYY" standing in for an
// absent element field.
func (o OperatorXY) String() string {
	if !o.HasY {
		return fmt.Sprintf("2%02dYYY", o.X)
	}
	return fmt.Sprintf("2%02d%03d", o.X, o.Y)
}

// DecodeXY decomposes a packed identifier into its class/element coordinate.
// fxy must fit in six decimal digits with the class digit F implicitly zero,
// i.e. 0 <= fxy < 1000000.
func DecodeXY(fxy int) (XY, error) {
	if fxy < 0 || fxy >= 1000000 {
		return XY{}, fmt.Errorf("FXY %d out of range [0, 1000000)", fxy)
	}
	if fxy%1000 > 255 {
		return XY{}, fmt.Errorf("FXY %d: element value %d exceeds 255", fxy, fxy%1000)
	}
	return XY{
		X: uint8((fxy / 1000) % 100),
		Y: uint8(fxy % 1000),
	}, nil
}

// DecodeDescriptor splits a six-digit packed identifier into its F, X and Y
// fields. Used for child references inside a sequence body, where F
// distinguishes the child kind.
func DecodeDescriptor(fxy int) (Descriptor, error) {
	if fxy < 0 || fxy >= 400000 {
		return Descriptor{}, fmt.Errorf("descriptor FXY %d out of range [0, 400000)", fxy)
	}
	if fxy%1000 > 255 {
		return Descriptor{}, fmt.Errorf("descriptor FXY %d: element value %d exceeds 255", fxy, fxy%1000)
	}
	return Descriptor{
		F: uint8(fxy / 100000),
		X: uint8((fxy % 100000) / 1000),
		Y: uint8(fxy % 1000),
	}, nil
}

// DecodeOperatorXY decodes a textual Table C identifier. The identifier must
// be six characters with leading class digit '2'. An element portion of
// literal "YYY" marks a wildcard operator with no fixed Y.
func DecodeOperatorXY(fxy string) (OperatorXY, error) {
	if len(fxy) != 6 {
		return OperatorXY{}, fmt.Errorf("operator FXY %q: want 6 characters, got %d", fxy, len(fxy))
	}
	if fxy[0] != '2' {
		return OperatorXY{}, fmt.Errorf("operator FXY %q: leading class digit is not 2", fxy)
	}
	fx, err := strconv.Atoi(fxy[:3])
	if err != nil {
		return OperatorXY{}, fmt.Errorf("operator FXY %q: %w", fxy, err)
	}
	x := uint8(fx % 100)
	if strings.HasSuffix(fxy, "YYY") {
		return OperatorXY{X: x}, nil
	}
	n, err := strconv.Atoi(fxy)
	if err != nil {
		return OperatorXY{}, fmt.Errorf("operator FXY %q: %w", fxy, err)
	}
	if n%1000 > 255 {
		return OperatorXY{}, fmt.Errorf("operator FXY %q: element value %d exceeds 255", fxy, n%1000)
	}
	return OperatorXY{X: x, Y: uint8(n % 1000), HasY: true}, nil
}
