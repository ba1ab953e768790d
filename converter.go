package unit

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/big"

	"github.com/govalues/decimal"
)

var (
	errZeroBase               = errors.New("zero base")
	errZeroNumerator          = errors.New("zero numerator")
	errZeroDenominator        = errors.New("zero denominator")
	errInvalidFactor          = errors.New("factor must be a nonzero finite number")
	errInvalidOffset          = errors.New("offset must be a finite number")
	errUnsupportedComposition = errors.New("unsupported composition")
)

// Converter represents an immutable scaling or affine transformation between
// two numeric representations of the same physical quantity.
// The set of variants is closed: [PowerConverter], [RationalConverter],
// [MultiplyConverter], [AddConverter], and the two-stage chain produced by
// [Converter.Compose] when no simplification applies.
// All implementations are plain value types, safe for concurrent use by
// multiple goroutines.
type Converter interface {
	// IsIdentity returns true if applying the converter is a no-op for all inputs.
	IsIdentity() bool

	// IsLinear returns true if the transform is pure scaling, without an
	// additive term.
	IsLinear() bool

	// Compose returns a converter equivalent to applying inner first and
	// then the receiver. When both converters are linear and simply
	// composable the result is a single simplified converter, otherwise it
	// is a two-stage chain.
	//
	// Compose panics if the operands have no composition rule, which
	// signals a gap in the algebra rather than bad input.
	Compose(inner Converter) Converter

	// Inverse returns the converter undoing the receiver.
	// The inverse of the identity is the identity itself.
	Inverse() Converter

	// ConvertInt converts an arbitrary-precision integer, returning an
	// exact integer result whenever possible and degrading to a decimal
	// result at the working precision of the [decimal] package otherwise.
	// See also type [Number].
	ConvertInt(value *big.Int) (Number, error)

	// ConvertDecimal converts a decimal value, rounding the result to at
	// least scale digits after the decimal point.
	ConvertDecimal(value decimal.Decimal, scale int) (decimal.Decimal, error)

	// ConvertFloat64 converts a value in native floating point, accepting
	// the precision loss of that representation.
	ConvertFloat64(value float64) float64

	// Equal reports whether two converters are interchangeable: either
	// both are the identity, regardless of variant, or both are the same
	// variant with equal parameters.
	Equal(other Converter) bool

	// Cmp defines a total order over converters, for canonicalization.
	// Identity converters compare equal to each other; same-variant
	// instances order by their defining parameters; different variants
	// order by canonical variant name.
	Cmp(other Converter) int

	// Hash returns a hash consistent with [Converter.Equal]; in particular
	// all identity converters share a single hash.
	Hash() uint64

	fmt.Stringer

	// kind keeps the variant set closed to this package, so that every
	// composition rule site can switch over it exhaustively.
	kind() converterKind
}

type converterKind int8

// The declaration order matches the alphabetical order of the variant names
// (AddConverter, ChainConverter, MultiplyConverter, PowerConverter,
// RationalConverter), so comparing kinds is the same as comparing names.
const (
	kindAdd converterKind = iota
	kindChain
	kindMultiply
	kindPower
	kindRational
)

// identity is the canonical identity converter used internally.
var identity Converter = MultiplyConverter{factor: 1}

// compose implements the composition algebra shared by all variants.
// The result applies inner first, then outer.
func compose(outer, inner Converter) Converter {
	if outer.IsIdentity() {
		return inner
	}
	if inner.IsIdentity() {
		return outer
	}
	if outer.IsLinear() && inner.IsLinear() {
		return composeLinear(outer, inner)
	}
	if o, ok := outer.(AddConverter); ok {
		if i, ok := inner.(AddConverter); ok {
			return AddConverter{offset: o.offset + i.offset}
		}
	}
	// affine converters chain, they cannot be simplified
	return chainConverter{outer: outer, inner: inner}
}

func composeLinear(outer, inner Converter) Converter {
	if outer.kind() == kindChain || inner.kind() == kindChain {
		return chainConverter{outer: outer, inner: inner}
	}
	if p, ok := outer.(PowerConverter); ok {
		if q, ok := inner.(PowerConverter); ok && p.base == q.base {
			return powerOf(p.base, p.exponent+q.exponent)
		}
	}
	if outer.kind() == kindMultiply || inner.kind() == kindMultiply {
		// An approximate factor is involved, so the best we can do is the
		// product of the floating-point factors. This loses the exactness
		// of a power or rational operand.
		return MustNewMultiply(outer.ConvertFloat64(1) * inner.ConvertFloat64(1))
	}
	return toRational(outer).mul(toRational(inner))
}

// toRational returns the exact rational equivalent of an exactly
// representable linear converter.
func toRational(c Converter) RationalConverter {
	switch c := c.(type) {
	case PowerConverter:
		return c.ToRational()
	case RationalConverter:
		return c
	default:
		panic(fmt.Sprintf("%v.Compose() failed: %v", c, errUnsupportedComposition))
	}
}

// fnvOf returns the FNV-1a hash of the concatenated parts.
func fnvOf(parts ...[]byte) uint64 {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum64()
}

// identityHash is shared by every identity converter, keeping [Converter.Hash]
// consistent with [Converter.Equal].
var identityHash = fnvOf([]byte("identity"))

// hashConverter derives a non-identity converter's hash from its canonical
// string, which encodes the variant name and its defining parameters.
func hashConverter(c Converter) uint64 {
	if c.IsIdentity() {
		return identityHash
	}
	return fnvOf([]byte(c.String()))
}

// cmpKinds orders converters of different variants by canonical variant name.
func cmpKinds(a, b converterKind) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// bigPow returns base^exponent as an arbitrary-precision integer.
// The exponent must not be negative.
func bigPow(base, exponent int) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(exponent)), nil)
}

// decimalFromBig converts an arbitrary-precision integer to a decimal.
// It returns an error if the integer does not fit the decimal's precision.
func decimalFromBig(value *big.Int) (decimal.Decimal, error) {
	if value.IsInt64() {
		return decimal.New(value.Int64(), 0)
	}
	d, err := decimal.Parse(value.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", value, err)
	}
	return d, nil
}

// chainConverter is a two-stage sequence, applying inner first and then
// outer. It is created only when composition cannot be simplified into a
// single converter.
type chainConverter struct {
	outer, inner Converter
}

func (c chainConverter) kind() converterKind { return kindChain }

func (c chainConverter) IsIdentity() bool { return false }

func (c chainConverter) IsLinear() bool { return c.outer.IsLinear() && c.inner.IsLinear() }

func (c chainConverter) Compose(inner Converter) Converter { return compose(c, inner) }

func (c chainConverter) Inverse() Converter {
	return chainConverter{outer: c.inner.Inverse(), inner: c.outer.Inverse()}
}

func (c chainConverter) ConvertInt(value *big.Int) (Number, error) {
	n, err := c.inner.ConvertInt(value)
	if err != nil {
		return Number{}, err
	}
	if n.IsExact() {
		return c.outer.ConvertInt(n.Int())
	}
	d, err := n.Decimal()
	if err != nil {
		return Number{}, err
	}
	d, err = c.outer.ConvertDecimal(d, 0)
	if err != nil {
		return Number{}, err
	}
	return inexactNumber(d), nil
}

func (c chainConverter) ConvertDecimal(value decimal.Decimal, scale int) (decimal.Decimal, error) {
	d, err := c.inner.ConvertDecimal(value, scale)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return c.outer.ConvertDecimal(d, scale)
}

func (c chainConverter) ConvertFloat64(value float64) float64 {
	return c.outer.ConvertFloat64(c.inner.ConvertFloat64(value))
}

func (c chainConverter) Equal(other Converter) bool {
	if other == nil {
		return false
	}
	if c.IsIdentity() && other.IsIdentity() {
		return true
	}
	if other, ok := other.(chainConverter); ok {
		return c.outer.Equal(other.outer) && c.inner.Equal(other.inner)
	}
	return false
}

func (c chainConverter) Cmp(other Converter) int {
	if c.IsIdentity() && other.IsIdentity() {
		return 0
	}
	if other, ok := other.(chainConverter); ok {
		if r := c.outer.Cmp(other.outer); r != 0 {
			return r
		}
		return c.inner.Cmp(other.inner)
	}
	return cmpKinds(c.kind(), other.kind())
}

func (c chainConverter) Hash() uint64 { return hashConverter(c) }

func (c chainConverter) String() string {
	return fmt.Sprintf("ChainConverter(%v after %v)", c.outer, c.inner)
}
