package unit

import (
	"fmt"
	"math"
	"math/big"

	"github.com/govalues/decimal"
)

// MultiplyConverter is a converter with an approximate floating-point
// factor. Unlike [PowerConverter] and [RationalConverter] it makes no
// exactness promise on any path.
// MultiplyConverter is designed to be safe for concurrent use by multiple
// goroutines.
type MultiplyConverter struct {
	factor float64
}

// NewMultiply returns a converter with the given factor.
//
// NewMultiply returns an error if the factor is zero, infinite or NaN,
// as such a factor has no inverse.
func NewMultiply(factor float64) (MultiplyConverter, error) {
	if factor == 0 || math.IsInf(factor, 0) || math.IsNaN(factor) {
		return MultiplyConverter{}, errInvalidFactor
	}
	return MultiplyConverter{factor: factor}, nil
}

// MustNewMultiply is like [NewMultiply] but panics if the converter cannot
// be constructed. It simplifies safe initialization of global variables
// holding converters.
func MustNewMultiply(factor float64) MultiplyConverter {
	c, err := NewMultiply(factor)
	if err != nil {
		panic(fmt.Sprintf("NewMultiply(%v) failed: %v", factor, err))
	}
	return c
}

// Factor returns the floating-point factor.
func (c MultiplyConverter) Factor() float64 {
	return c.factor
}

// IsIdentity returns true if the factor is one.
func (c MultiplyConverter) IsIdentity() bool {
	return c.factor == 1
}

// IsLinear returns true, a multiply converter is pure scaling.
func (c MultiplyConverter) IsLinear() bool {
	return true
}

// Compose returns a converter equivalent to applying inner first and then
// the receiver. See also [Converter.Compose].
func (c MultiplyConverter) Compose(inner Converter) Converter {
	return compose(c, inner)
}

// Inverse returns the converter with the reciprocal factor.
// The inverse of the identity is the receiver itself.
func (c MultiplyConverter) Inverse() Converter {
	if c.IsIdentity() {
		return c
	}
	return MultiplyConverter{factor: 1 / c.factor}
}

// ConvertInt converts an arbitrary-precision integer.
// The factor is approximate, so a non-identity result is always decimal.
func (c MultiplyConverter) ConvertInt(value *big.Int) (Number, error) {
	if c.IsIdentity() {
		return exactNumber(value), nil
	}
	d, err := decimalFromBig(value)
	if err != nil {
		return Number{}, fmt.Errorf("converting %v: %w", value, err)
	}
	f, err := decimal.NewFromFloat64(c.factor)
	if err != nil {
		return Number{}, fmt.Errorf("converting %v: %w", value, err)
	}
	d, err = d.Mul(f)
	if err != nil {
		return Number{}, fmt.Errorf("converting %v: %w", value, err)
	}
	return inexactNumber(d), nil
}

// ConvertDecimal converts a decimal value, rounding the result to at least
// scale digits after the decimal point.
func (c MultiplyConverter) ConvertDecimal(value decimal.Decimal, scale int) (decimal.Decimal, error) {
	if c.IsIdentity() {
		return value, nil
	}
	f, err := decimal.NewFromFloat64(c.factor)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", value, err)
	}
	d, err := value.MulExact(f, scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", value, err)
	}
	return d, nil
}

// ConvertFloat64 converts a value in native floating point.
func (c MultiplyConverter) ConvertFloat64(value float64) float64 {
	if c.IsIdentity() {
		return value
	}
	return value * c.factor
}

// Equal reports whether two converters are interchangeable.
// See also [Converter.Equal].
func (c MultiplyConverter) Equal(other Converter) bool {
	if other == nil {
		return false
	}
	if c.IsIdentity() && other.IsIdentity() {
		return true
	}
	if other, ok := other.(MultiplyConverter); ok {
		return c.factor == other.factor
	}
	return false
}

// Cmp compares converters, ordering multiply converters by factor.
// See also [Converter.Cmp].
func (c MultiplyConverter) Cmp(other Converter) int {
	if c.IsIdentity() && other.IsIdentity() {
		return 0
	}
	if other, ok := other.(MultiplyConverter); ok {
		switch {
		case c.factor < other.factor:
			return -1
		case c.factor > other.factor:
			return 1
		default:
			return 0
		}
	}
	return cmpKinds(c.kind(), other.kind())
}

// Hash returns a hash consistent with [MultiplyConverter.Equal].
func (c MultiplyConverter) Hash() uint64 {
	return hashConverter(c)
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the converter, such as "MultiplyConverter(0.3048)".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c MultiplyConverter) String() string {
	return fmt.Sprintf("MultiplyConverter(%v)", c.factor)
}

func (c MultiplyConverter) kind() converterKind {
	return kindMultiply
}

// AddConverter is a converter with an approximate floating-point additive
// offset. It is the only affine variant: composing it with a scaling
// converter produces a two-stage chain.
// The zero value behaves as the identity converter.
// AddConverter is designed to be safe for concurrent use by multiple
// goroutines.
type AddConverter struct {
	offset float64
}

// NewAdd returns a converter with the given offset.
//
// NewAdd returns an error if the offset is infinite or NaN.
func NewAdd(offset float64) (AddConverter, error) {
	if math.IsInf(offset, 0) || math.IsNaN(offset) {
		return AddConverter{}, errInvalidOffset
	}
	return AddConverter{offset: offset}, nil
}

// MustNewAdd is like [NewAdd] but panics if the converter cannot be
// constructed. It simplifies safe initialization of global variables
// holding converters.
func MustNewAdd(offset float64) AddConverter {
	c, err := NewAdd(offset)
	if err != nil {
		panic(fmt.Sprintf("NewAdd(%v) failed: %v", offset, err))
	}
	return c
}

// Offset returns the floating-point offset.
func (c AddConverter) Offset() float64 {
	return c.offset
}

// IsIdentity returns true if the offset is zero.
func (c AddConverter) IsIdentity() bool {
	return c.offset == 0
}

// IsLinear returns false, an add converter is affine, not pure scaling.
func (c AddConverter) IsLinear() bool {
	return false
}

// Compose returns a converter equivalent to applying inner first and then
// the receiver. Two add converters compose into a single add converter with
// the offsets summed. See also [Converter.Compose].
func (c AddConverter) Compose(inner Converter) Converter {
	return compose(c, inner)
}

// Inverse returns the converter with the offset negated.
// The inverse of the identity is the receiver itself.
func (c AddConverter) Inverse() Converter {
	if c.IsIdentity() {
		return c
	}
	return AddConverter{offset: -c.offset}
}

// ConvertInt converts an arbitrary-precision integer.
// The offset is approximate, so a non-identity result is always decimal.
func (c AddConverter) ConvertInt(value *big.Int) (Number, error) {
	if c.IsIdentity() {
		return exactNumber(value), nil
	}
	d, err := decimalFromBig(value)
	if err != nil {
		return Number{}, fmt.Errorf("converting %v: %w", value, err)
	}
	o, err := decimal.NewFromFloat64(c.offset)
	if err != nil {
		return Number{}, fmt.Errorf("converting %v: %w", value, err)
	}
	d, err = d.Add(o)
	if err != nil {
		return Number{}, fmt.Errorf("converting %v: %w", value, err)
	}
	return inexactNumber(d), nil
}

// ConvertDecimal converts a decimal value, rounding the result to at least
// scale digits after the decimal point.
func (c AddConverter) ConvertDecimal(value decimal.Decimal, scale int) (decimal.Decimal, error) {
	if c.IsIdentity() {
		return value, nil
	}
	o, err := decimal.NewFromFloat64(c.offset)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", value, err)
	}
	d, err := value.AddExact(o, scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", value, err)
	}
	return d, nil
}

// ConvertFloat64 converts a value in native floating point.
func (c AddConverter) ConvertFloat64(value float64) float64 {
	if c.IsIdentity() {
		return value
	}
	return value + c.offset
}

// Equal reports whether two converters are interchangeable.
// See also [Converter.Equal].
func (c AddConverter) Equal(other Converter) bool {
	if other == nil {
		return false
	}
	if c.IsIdentity() && other.IsIdentity() {
		return true
	}
	if other, ok := other.(AddConverter); ok {
		return c.offset == other.offset
	}
	return false
}

// Cmp compares converters, ordering add converters by offset.
// See also [Converter.Cmp].
func (c AddConverter) Cmp(other Converter) int {
	if c.IsIdentity() && other.IsIdentity() {
		return 0
	}
	if other, ok := other.(AddConverter); ok {
		switch {
		case c.offset < other.offset:
			return -1
		case c.offset > other.offset:
			return 1
		default:
			return 0
		}
	}
	return cmpKinds(c.kind(), other.kind())
}

// Hash returns a hash consistent with [AddConverter.Equal].
func (c AddConverter) Hash() uint64 {
	return hashConverter(c)
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the converter, such as "AddConverter(+273.15)".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c AddConverter) String() string {
	return fmt.Sprintf("AddConverter(%+v)", c.offset)
}

func (c AddConverter) kind() converterKind {
	return kindAdd
}
