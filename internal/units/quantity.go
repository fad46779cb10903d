// Package units implements SI dimensional analysis: the Quantity signature
// algebra and a fixed table of unit symbols, prefixes, and their scale
// factors and offsets.
//
// The seven SI base dimensions are tracked as small signed exponents,
// grounded on the base-unit/exponent-vector design used by physical-unit
// libraries generally: a Quantity is a vector, multiplication of units adds
// exponent vectors, division subtracts them, and exponentiation scales
// them.
package units

import "fmt"

// Dimension indexes the seven SI base dimensions within a Quantity.
type Dimension int

const (
	Time Dimension = iota
	Length
	Mass
	Current
	Temperature
	Amount
	Luminosity
	numDimensions
)

// Quantity is the dimensional signature of a Scalar: one signed integer
// exponent per SI base dimension.
type Quantity [numDimensions]int8

// Dimensionless is the distinguished all-zero quantity: the only quantity
// admissible as input to transcendental functions.
var Dimensionless = Quantity{}

// IsDimensionless reports whether every exponent is zero.
func (q Quantity) IsDimensionless() bool {
	return q == Dimensionless
}

// Equal reports pointwise equality.
func (q Quantity) Equal(other Quantity) bool {
	return q == other
}

// Mul returns the pointwise sum of exponents, the quantity of a product.
func (q Quantity) Mul(other Quantity) Quantity {
	var r Quantity
	for i := range q {
		r[i] = q[i] + other[i]
	}
	return r
}

// Div returns the pointwise difference of exponents, the quantity of a
// ratio.
func (q Quantity) Div(other Quantity) Quantity {
	var r Quantity
	for i := range q {
		r[i] = q[i] - other[i]
	}
	return r
}

// Pow scales every exponent by n, the quantity of q raised to an integer
// power.
func (q Quantity) Pow(n int) Quantity {
	var r Quantity
	for i := range q {
		r[i] = q[i] * int8(n)
	}
	return r
}

// Neg returns the inverse quantity (every exponent negated): the quantity
// of 1/q.
func (q Quantity) Neg() Quantity {
	var r Quantity
	for i := range q {
		r[i] = -q[i]
	}
	return r
}

// String renders a human-readable dimension vector, e.g. "T^-2*L" for
// acceleration. Used only in diagnostics; never parsed back.
func (q Quantity) String() string {
	if q.IsDimensionless() {
		return "dimensionless"
	}
	symbols := [numDimensions]string{"T", "L", "M", "I", "Θ", "N", "J"}
	out := ""
	for i, exp := range q {
		if exp == 0 {
			continue
		}
		if out != "" {
			out += "*"
		}
		if exp == 1 {
			out += symbols[i]
		} else {
			out += fmt.Sprintf("%s^%d", symbols[i], exp)
		}
	}
	return out
}

// Affine quantities are the ones that may carry an Absolute kind. The
// scalar algebra in internal/scalar does not check this itself; it accepts
// an Absolute scalar of any quantity.
var (
	QuantityTime        = Quantity{Time: 1}
	QuantityLength      = Quantity{Length: 1}
	QuantityTemperature = Quantity{Temperature: 1}
)

// IsAffine reports whether q is one of the registered quantities that may
// be carried at Absolute kind.
func IsAffine(q Quantity) bool {
	return q.Equal(QuantityTime) || q.Equal(QuantityLength) || q.Equal(QuantityTemperature)
}
