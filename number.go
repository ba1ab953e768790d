package unit

import (
	"math/big"

	"github.com/govalues/decimal"
)

// Number holds the result of an exact-integer conversion: either an exact
// arbitrary-precision integer, or a decimal approximation produced by the
// documented precision-degradation fallback of [Converter.ConvertInt].
// The zero value is the inexact decimal zero.
type Number struct {
	exact bool
	i     *big.Int
	d     decimal.Decimal
}

func exactNumber(value *big.Int) Number {
	return Number{exact: true, i: new(big.Int).Set(value)}
}

func inexactNumber(value decimal.Decimal) Number {
	return Number{d: value}
}

// IsExact returns true if the number is an exact integer result.
func (n Number) IsExact() bool {
	return n.exact
}

// Int returns the exact integer result, or nil if the conversion degraded
// to decimal arithmetic.
func (n Number) Int() *big.Int {
	if !n.exact {
		return nil
	}
	return new(big.Int).Set(n.i)
}

// Decimal returns the number as a decimal.
// For an exact result it returns an error if the integer does not fit the
// decimal's precision.
func (n Number) Decimal() (decimal.Decimal, error) {
	if n.exact {
		return decimalFromBig(n.i)
	}
	return n.d, nil
}

// Float64 returns the nearest floating-point representation of the number.
func (n Number) Float64() float64 {
	if n.exact {
		f, _ := new(big.Float).SetInt(n.i).Float64()
		return f
	}
	f, _ := n.d.Float64()
	return f
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the number.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (n Number) String() string {
	if n.exact {
		return n.i.String()
	}
	return n.d.String()
}
