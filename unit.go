package unit

import (
	"errors"
	"fmt"
)

var errUnitMismatch = errors.New("unit mismatch")

// Unit represents a unit of measurement: a symbol, a physical dimension
// label, and a converter from the unit's own scale to the reference unit of
// that dimension. The zero value is the dimensionless reference unit with
// an empty symbol.
// Unit is designed to be safe for concurrent use by multiple goroutines.
type Unit struct {
	symbol string
	dim    string
	toRef  Converter // nil means the identity
}

// NewUnit returns the reference unit of the given dimension.
// Units of the same dimension are mutually convertible; the dimension label
// is compared verbatim.
func NewUnit(symbol, dim string) Unit {
	return Unit{symbol: symbol, dim: dim}
}

// Symbol returns the unit's symbol.
func (u Unit) Symbol() string {
	return u.symbol
}

// Dimension returns the unit's dimension label.
func (u Unit) Dimension() string {
	return u.dim
}

func (u Unit) toReference() Converter {
	if u.toRef == nil {
		return identity
	}
	return u.toRef
}

// Transformed returns a derived unit of the same dimension such that c
// converts values of the derived unit into values of the receiver.
// Passing an exact converter, such as a [PowerConverter] or a
// [RationalConverter], keeps conversions between the derived unit and the
// receiver exact.
func (u Unit) Transformed(symbol string, c Converter) Unit {
	return Unit{symbol: symbol, dim: u.dim, toRef: u.toReference().Compose(c)}
}

// Multiply returns a derived unit whose values scale into the receiver by
// the given approximate factor. For example, with a metre unit m,
// m.Multiply(0.3048, "ft") is the foot.
func (u Unit) Multiply(factor float64, symbol string) Unit {
	return u.Transformed(symbol, MustNewMultiply(factor))
}

// Shift returns a derived unit whose values translate into the receiver by
// the given offset. For example, with a kelvin unit K,
// K.Shift(273.15, "°C") is the Celsius scale.
func (u Unit) Shift(offset float64, symbol string) Unit {
	return u.Transformed(symbol, MustNewAdd(offset))
}

// Prefixed returns a derived unit scaled by the given prefix, such as
// m.Prefixed(Kilo, "km"). The scaling is an exact power factor.
func (u Unit) Prefixed(p Prefix, symbol string) Unit {
	return u.Transformed(symbol, NewPowerFromPrefix(p))
}

// ConverterTo returns the converter from the receiver's scale to the target
// unit's scale.
//
// ConverterTo returns an error if the units do not share a dimension.
func (u Unit) ConverterTo(target Unit) (Converter, error) {
	if u.dim != target.dim {
		return nil, fmt.Errorf("converting %v to %v: %w", u, target, errUnitMismatch)
	}
	if u.Equal(target) {
		return identity, nil
	}
	return target.toReference().Inverse().Compose(u.toReference()), nil
}

// Equal reports whether two units have the same symbol, dimension and
// reference converter.
func (u Unit) Equal(v Unit) bool {
	return u.symbol == v.symbol &&
		u.dim == v.dim &&
		u.toReference().Equal(v.toReference())
}

// String method implements the [fmt.Stringer] interface and returns the
// unit's symbol.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u Unit) String() string {
	return u.symbol
}
