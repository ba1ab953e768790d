package unit

import (
	"fmt"
	"math"
	"math/big"

	"github.com/govalues/decimal"
)

// PowerConverter is a converter whose factor is base^exponent, with an
// integer base and an integer exponent.
// Conversions through a PowerConverter stay exact on the integer path
// whenever the arithmetic allows it.
// The zero value behaves as the identity converter.
// PowerConverter is designed to be safe for concurrent use by multiple
// goroutines.
type PowerConverter struct {
	base     int
	exponent int
	factor   float64 // base^exponent, for the floating-point path only
}

// NewPower returns a converter with the factor base^exponent.
//
// NewPower returns an error if the base is zero, as 0^0 is undefined.
// Composition never changes the base, so no other guard is needed.
func NewPower(base, exponent int) (PowerConverter, error) {
	if base == 0 {
		return PowerConverter{}, fmt.Errorf("0^0 is undefined: %w", errZeroBase)
	}
	return powerOf(base, exponent), nil
}

// MustNewPower is like [NewPower] but panics if the converter cannot be
// constructed. It simplifies safe initialization of global variables holding
// converters.
func MustNewPower(base, exponent int) PowerConverter {
	c, err := NewPower(base, exponent)
	if err != nil {
		panic(fmt.Sprintf("NewPower(%v, %v) failed: %v", base, exponent, err))
	}
	return c
}

// NewPowerFromPrefix returns the converter for a named prefix factor.
// See also type [Prefix].
func NewPowerFromPrefix(p Prefix) PowerConverter {
	return powerOf(p.base, p.exponent)
}

func powerOf(base, exponent int) PowerConverter {
	return PowerConverter{
		base:     base,
		exponent: exponent,
		factor:   math.Pow(float64(base), float64(exponent)),
	}
}

// Base returns the base of the factor.
func (c PowerConverter) Base() int {
	return c.base
}

// Exponent returns the exponent of the factor.
func (c PowerConverter) Exponent() int {
	return c.exponent
}

// IsIdentity returns true if the factor is one, that is if the base is one
// or the exponent is zero.
func (c PowerConverter) IsIdentity() bool {
	if c.base == 1 {
		return true
	}
	return c.exponent == 0
}

// IsLinear returns true, a power converter is pure scaling.
func (c PowerConverter) IsLinear() bool {
	return true
}

// Compose returns a converter equivalent to applying inner first and then
// the receiver. Two power converters with the same base compose into a
// single power converter with the exponents summed; a zero sum yields the
// identity. See also [Converter.Compose].
func (c PowerConverter) Compose(inner Converter) Converter {
	return compose(c, inner)
}

// Inverse returns the converter with the exponent negated.
// The inverse of the identity is the receiver itself.
func (c PowerConverter) Inverse() Converter {
	if c.IsIdentity() {
		return c
	}
	return powerOf(c.base, -c.exponent)
}

// ToRational returns the exact rational equivalent of the converter:
// base^exponent over one for a non-negative exponent, one over
// base^-exponent otherwise.
func (c PowerConverter) ToRational() RationalConverter {
	if c.exponent > 0 {
		return rationalOf(bigPow(c.base, c.exponent), big.NewInt(1))
	}
	return rationalOf(big.NewInt(1), bigPow(c.base, -c.exponent))
}

// ConvertInt converts an arbitrary-precision integer.
// A positive exponent multiplies exactly. A negative exponent divides and
// returns an exact integer when the remainder is zero; otherwise the result
// degrades to decimal division at the working precision of the [decimal]
// package, and exactness is lost.
func (c PowerConverter) ConvertInt(value *big.Int) (Number, error) {
	if c.IsIdentity() {
		return exactNumber(value), nil
	}
	factor := bigPow(c.base, abs(c.exponent))
	if c.exponent > 0 {
		return exactNumber(new(big.Int).Mul(factor, value)), nil
	}
	quo, rem := new(big.Int).QuoRem(value, factor, new(big.Int))
	if rem.Sign() == 0 {
		return exactNumber(quo), nil
	}
	d, err := decimalFromBig(value)
	if err != nil {
		return Number{}, fmt.Errorf("converting %v: %w", value, err)
	}
	e, err := decimalFromBig(factor)
	if err != nil {
		return Number{}, fmt.Errorf("converting %v: %w", value, err)
	}
	d, err = d.Quo(e)
	if err != nil {
		return Number{}, fmt.Errorf("converting %v: %w", value, err)
	}
	return inexactNumber(d), nil
}

// ConvertDecimal converts a decimal value, rounding the result to at least
// scale digits after the decimal point.
func (c PowerConverter) ConvertDecimal(value decimal.Decimal, scale int) (decimal.Decimal, error) {
	if c.IsIdentity() {
		return value, nil
	}
	f, err := decimalFromBig(bigPow(c.base, abs(c.exponent)))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", value, err)
	}
	if c.exponent > 0 {
		d, err := value.MulExact(f, scale)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("converting %v: %w", value, err)
		}
		return d, nil
	}
	d, err := value.QuoExact(f, scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", value, err)
	}
	return d, nil
}

// ConvertFloat64 converts a value in native floating point.
func (c PowerConverter) ConvertFloat64(value float64) float64 {
	if c.IsIdentity() {
		return value
	}
	return value * c.factor
}

// Equal reports whether two converters are interchangeable.
// See also [Converter.Equal].
func (c PowerConverter) Equal(other Converter) bool {
	if other == nil {
		return false
	}
	if c.IsIdentity() && other.IsIdentity() {
		return true
	}
	if other, ok := other.(PowerConverter); ok {
		return c.base == other.base && c.exponent == other.exponent
	}
	return false
}

// Cmp compares converters, ordering power converters by base and then by
// exponent. See also [Converter.Cmp].
func (c PowerConverter) Cmp(other Converter) int {
	if c.IsIdentity() && other.IsIdentity() {
		return 0
	}
	if other, ok := other.(PowerConverter); ok {
		switch {
		case c.base != other.base:
			if c.base < other.base {
				return -1
			}
			return 1
		case c.exponent != other.exponent:
			if c.exponent < other.exponent {
				return -1
			}
			return 1
		default:
			return 0
		}
	}
	return cmpKinds(c.kind(), other.kind())
}

// Hash returns a hash consistent with [PowerConverter.Equal].
func (c PowerConverter) Hash() uint64 {
	return hashConverter(c)
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the converter, such as "PowerConverter(10^3)".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c PowerConverter) String() string {
	return fmt.Sprintf("PowerConverter(%d^%d)", c.base, c.exponent)
}

func (c PowerConverter) kind() converterKind {
	return kindPower
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
