// Package scalar implements the dimensioned-value algebra: a Scalar pairs
// a coherent-SI float with a dimensional Quantity signature and an
// Absolute/Relative kind, and every arithmetic, comparison, and
// exponentiation operator encodes the dimensional rules a physical
// quantity must obey.
package scalar

import (
	"math"

	everrors "github.com/unitexpr/unitexpr/internal/errors"
	"github.com/unitexpr/unitexpr/internal/units"
)

// Kind distinguishes point-like (Absolute) quantities, such as an instant
// in time or a position, from vector-like (Relative) ones, such as a
// duration or a length.
type Kind int

const (
	Relative Kind = iota
	Absolute
)

// Scalar is an SI-valued real number paired with a dimensional signature
// and an Absolute/Relative kind. Si is always stored in coherent SI units,
// offsets already applied.
type Scalar struct {
	Si       float64
	Quantity units.Quantity
	Kind     Kind
}

// NewRelative builds a dimensionless or dimensioned relative scalar.
func NewRelative(si float64, q units.Quantity) Scalar {
	return Scalar{Si: si, Quantity: q, Kind: Relative}
}

// NewAbsolute builds an absolute scalar. Callers are responsible for only
// doing so on an affine quantity (time, length, temperature); neither
// construction nor the algebra below checks this.
func NewAbsolute(si float64, q units.Quantity) Scalar {
	return Scalar{Si: si, Quantity: q, Kind: Absolute}
}

// Dimensionless reports whether s carries no dimension.
func (s Scalar) Dimensionless() bool {
	return s.Quantity.IsDimensionless()
}

// Neg returns -s; kind and quantity are unchanged.
func (s Scalar) Neg() Scalar {
	return Scalar{Si: -s.Si, Quantity: s.Quantity, Kind: s.Kind}
}

// Add implements spec.md §4.2's '+' truth table; pos is used only for the
// returned error's position.
func (l Scalar) Add(r Scalar, pos int) (Scalar, error) {
	if !l.Quantity.Equal(r.Quantity) {
		return Scalar{}, everrors.New(everrors.KindDimensionMismatch, pos,
			"cannot add quantities %s and %s", l.Quantity, r.Quantity)
	}
	switch {
	case l.Kind == Relative && r.Kind == Relative:
		return NewRelative(l.Si+r.Si, l.Quantity), nil
	case l.Kind == Absolute && r.Kind == Relative:
		return NewAbsolute(l.Si+r.Si, l.Quantity), nil
	default:
		return Scalar{}, everrors.New(everrors.KindAbsoluteOperation, pos,
			"cannot add %v to %v", r.Kind, l.Kind)
	}
}

// Sub implements spec.md §4.2's '-' truth table.
func (l Scalar) Sub(r Scalar, pos int) (Scalar, error) {
	if !l.Quantity.Equal(r.Quantity) {
		return Scalar{}, everrors.New(everrors.KindDimensionMismatch, pos,
			"cannot subtract quantities %s and %s", l.Quantity, r.Quantity)
	}
	switch {
	case l.Kind == Relative && r.Kind == Relative:
		return NewRelative(l.Si-r.Si, l.Quantity), nil
	case l.Kind == Absolute && r.Kind == Absolute:
		return NewRelative(l.Si-r.Si, l.Quantity), nil
	case l.Kind == Absolute && r.Kind == Relative:
		return NewAbsolute(l.Si-r.Si, l.Quantity), nil
	default: // Relative - Absolute
		return Scalar{}, everrors.New(everrors.KindAbsoluteOperation, pos,
			"cannot subtract %v from %v", r.Kind, l.Kind)
	}
}

// Mul implements spec.md §4.2's '*' rule: both operands must be Relative.
func (l Scalar) Mul(r Scalar, pos int) (Scalar, error) {
	if l.Kind != Relative || r.Kind != Relative {
		return Scalar{}, everrors.New(everrors.KindAbsoluteOperation, pos, "cannot multiply absolute scalars")
	}
	return NewRelative(l.Si*r.Si, l.Quantity.Mul(r.Quantity)), nil
}

// Div implements spec.md §4.2's '/' rule: both operands must be Relative
// and the divisor non-zero.
func (l Scalar) Div(r Scalar, pos int) (Scalar, error) {
	if l.Kind != Relative || r.Kind != Relative {
		return Scalar{}, everrors.New(everrors.KindAbsoluteOperation, pos, "cannot divide absolute scalars")
	}
	if r.Si == 0 {
		return Scalar{}, everrors.New(everrors.KindDivisionByZero, pos, "division by zero")
	}
	return NewRelative(l.Si/r.Si, l.Quantity.Div(r.Quantity)), nil
}

// Pow implements spec.md §4.2's '^' rule: both operands Relative and
// dimensionless.
func (l Scalar) Pow(r Scalar, pos int) (Scalar, error) {
	if l.Kind != Relative || r.Kind != Relative {
		return Scalar{}, everrors.New(everrors.KindAbsoluteOperation, pos, "cannot exponentiate absolute scalars")
	}
	if !l.Dimensionless() || !r.Dimensionless() {
		return Scalar{}, everrors.New(everrors.KindDimensionMismatch, pos, "^ requires dimensionless operands")
	}
	return NewRelative(math.Pow(l.Si, r.Si), units.Dimensionless), nil
}

// Cmp compares the SI magnitude of two same-quantity scalars, for use by
// <, <=, >, >=. +0.0 and -0.0 compare equal, matching spec.md §9.
func (l Scalar) Cmp(r Scalar, pos int) (int, error) {
	if !l.Quantity.Equal(r.Quantity) {
		return 0, everrors.New(everrors.KindDimensionMismatch, pos,
			"cannot compare quantities %s and %s", l.Quantity, r.Quantity)
	}
	switch {
	case l.Si == r.Si || (l.Si == 0 && r.Si == 0):
		return 0, nil
	case l.Si < r.Si:
		return -1, nil
	default:
		return 1, nil
	}
}

// Equal implements spec.md §4.2's '==' rule for two Scalars: exact SI
// equality after requiring the same quantity (+0.0 == -0.0). Kind is not
// part of equality.
func (l Scalar) Equal(r Scalar, pos int) (bool, error) {
	if !l.Quantity.Equal(r.Quantity) {
		return false, everrors.New(everrors.KindDimensionMismatch, pos,
			"cannot compare quantities %s and %s", l.Quantity, r.Quantity)
	}
	return l.Si == r.Si, nil
}

func (k Kind) String() string {
	if k == Absolute {
		return "Absolute"
	}
	return "Relative"
}
