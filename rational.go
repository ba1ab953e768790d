package unit

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

// RationalConverter is a converter whose factor is an exact ratio of two
// arbitrary-precision integers.
// The ratio is kept normalized: the denominator is positive and the two
// integers share no common divisor.
// The zero value behaves as the identity converter.
// RationalConverter is designed to be safe for concurrent use by multiple
// goroutines.
type RationalConverter struct {
	num, den *big.Int // nil means one
}

// NewRational returns a converter with the factor num/den.
// The arguments are copied, and the ratio is normalized.
//
// NewRational returns an error if the numerator or the denominator is zero,
// as a zero factor has no inverse.
func NewRational(num, den *big.Int) (RationalConverter, error) {
	if num == nil || num.Sign() == 0 {
		return RationalConverter{}, errZeroNumerator
	}
	if den == nil || den.Sign() == 0 {
		return RationalConverter{}, errZeroDenominator
	}
	return rationalOf(num, den), nil
}

// NewRationalFromInt64 is like [NewRational] for machine-sized integers.
func NewRationalFromInt64(num, den int64) (RationalConverter, error) {
	return NewRational(big.NewInt(num), big.NewInt(den))
}

// MustNewRationalFromInt64 is like [NewRationalFromInt64] but panics if the
// converter cannot be constructed. It simplifies safe initialization of
// global variables holding converters.
func MustNewRationalFromInt64(num, den int64) RationalConverter {
	c, err := NewRationalFromInt64(num, den)
	if err != nil {
		panic(fmt.Sprintf("NewRationalFromInt64(%v, %v) failed: %v", num, den, err))
	}
	return c
}

func rationalOf(num, den *big.Int) RationalConverter {
	r := new(big.Rat).SetFrac(num, den)
	return RationalConverter{num: r.Num(), den: r.Denom()}
}

func (c RationalConverter) numerator() *big.Int {
	if c.num == nil {
		return big.NewInt(1)
	}
	return c.num
}

func (c RationalConverter) denominator() *big.Int {
	if c.den == nil {
		return big.NewInt(1)
	}
	return c.den
}

// Num returns a copy of the normalized numerator.
func (c RationalConverter) Num() *big.Int {
	return new(big.Int).Set(c.numerator())
}

// Den returns a copy of the normalized denominator.
func (c RationalConverter) Den() *big.Int {
	return new(big.Int).Set(c.denominator())
}

// IsIdentity returns true if the normalized ratio is one.
func (c RationalConverter) IsIdentity() bool {
	return c.numerator().Cmp(c.denominator()) == 0
}

// IsLinear returns true, a rational converter is pure scaling.
func (c RationalConverter) IsLinear() bool {
	return true
}

// Compose returns a converter equivalent to applying inner first and then
// the receiver. Rational and power operands compose exactly into a single
// rational converter. See also [Converter.Compose].
func (c RationalConverter) Compose(inner Converter) Converter {
	return compose(c, inner)
}

// mul returns the exact product of two rational converters.
func (c RationalConverter) mul(other RationalConverter) RationalConverter {
	r := new(big.Rat).SetFrac(c.numerator(), c.denominator())
	r.Mul(r, new(big.Rat).SetFrac(other.numerator(), other.denominator()))
	return RationalConverter{num: r.Num(), den: r.Denom()}
}

// Inverse returns the converter with the ratio swapped.
// The inverse of the identity is the receiver itself.
func (c RationalConverter) Inverse() Converter {
	if c.IsIdentity() {
		return c
	}
	return rationalOf(c.denominator(), c.numerator())
}

// ConvertInt converts an arbitrary-precision integer.
// The value is multiplied by the numerator and divided by the denominator;
// when the division leaves no remainder the result is an exact integer,
// otherwise it degrades to decimal division at the working precision of the
// [decimal] package, and exactness is lost.
func (c RationalConverter) ConvertInt(value *big.Int) (Number, error) {
	if c.IsIdentity() {
		return exactNumber(value), nil
	}
	scaled := new(big.Int).Mul(value, c.numerator())
	quo, rem := new(big.Int).QuoRem(scaled, c.denominator(), new(big.Int))
	if rem.Sign() == 0 {
		return exactNumber(quo), nil
	}
	d, err := decimalFromBig(scaled)
	if err != nil {
		return Number{}, fmt.Errorf("converting %v: %w", value, err)
	}
	e, err := decimalFromBig(c.denominator())
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
func (c RationalConverter) ConvertDecimal(value decimal.Decimal, scale int) (decimal.Decimal, error) {
	if c.IsIdentity() {
		return value, nil
	}
	n, err := decimalFromBig(c.numerator())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", value, err)
	}
	e, err := decimalFromBig(c.denominator())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", value, err)
	}
	d, err := value.Mul(n)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", value, err)
	}
	d, err = d.QuoExact(e, scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", value, err)
	}
	return d, nil
}

// ConvertFloat64 converts a value in native floating point.
func (c RationalConverter) ConvertFloat64(value float64) float64 {
	if c.IsIdentity() {
		return value
	}
	f, _ := new(big.Rat).SetFrac(c.numerator(), c.denominator()).Float64()
	return value * f
}

// Equal reports whether two converters are interchangeable.
// See also [Converter.Equal].
func (c RationalConverter) Equal(other Converter) bool {
	if other == nil {
		return false
	}
	if c.IsIdentity() && other.IsIdentity() {
		return true
	}
	if other, ok := other.(RationalConverter); ok {
		return c.numerator().Cmp(other.numerator()) == 0 &&
			c.denominator().Cmp(other.denominator()) == 0
	}
	return false
}

// Cmp compares converters, ordering rational converters by numerator and
// then by denominator. See also [Converter.Cmp].
func (c RationalConverter) Cmp(other Converter) int {
	if c.IsIdentity() && other.IsIdentity() {
		return 0
	}
	if other, ok := other.(RationalConverter); ok {
		if r := c.numerator().Cmp(other.numerator()); r != 0 {
			return r
		}
		return c.denominator().Cmp(other.denominator())
	}
	return cmpKinds(c.kind(), other.kind())
}

// Hash returns a hash consistent with [RationalConverter.Equal].
func (c RationalConverter) Hash() uint64 {
	return hashConverter(c)
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the converter, such as "RationalConverter(1/12)".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c RationalConverter) String() string {
	return fmt.Sprintf("RationalConverter(%v/%v)", c.numerator(), c.denominator())
}

func (c RationalConverter) kind() converterKind {
	return kindRational
}
