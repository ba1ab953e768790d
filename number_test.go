package unit

import (
	"math/big"
	"testing"

	"github.com/govalues/decimal"
)

func TestNumber_ZeroValue(t *testing.T) {
	got := Number{}
	if got.IsExact() {
		t.Errorf("Number{}.IsExact() = true, want false")
	}
	if got.String() != "0" {
		t.Errorf("Number{}.String() = %q, want %q", got.String(), "0")
	}
}

func TestNumber_Exact(t *testing.T) {
	n := exactNumber(big.NewInt(7000))
	if !n.IsExact() {
		t.Errorf("%q.IsExact() = false, want true", n)
	}
	if n.Int().Int64() != 7000 {
		t.Errorf("%q.Int() = %v, want 7000", n, n.Int())
	}
	d, err := n.Decimal()
	if err != nil {
		t.Errorf("%q.Decimal() failed: %v", n, err)
	}
	if d.String() != "7000" {
		t.Errorf("%q.Decimal() = %q, want %q", n, d, "7000")
	}
	if n.Float64() != 7000 {
		t.Errorf("%q.Float64() = %v, want 7000", n, n.Float64())
	}
}

func TestNumber_Inexact(t *testing.T) {
	n := inexactNumber(decimal.MustParse("0.7"))
	if n.IsExact() {
		t.Errorf("%q.IsExact() = true, want false", n)
	}
	if n.Int() != nil {
		t.Errorf("%q.Int() = %v, want nil", n, n.Int())
	}
	if n.Float64() != 0.7 {
		t.Errorf("%q.Float64() = %v, want 0.7", n, n.Float64())
	}
	if n.String() != "0.7" {
		t.Errorf("%q.String() = %q, want %q", n, n.String(), "0.7")
	}
}

func TestNumber_Immutability(t *testing.T) {
	v := big.NewInt(42)
	n := exactNumber(v)
	v.SetInt64(99)
	if n.Int().Int64() != 42 {
		t.Errorf("exactNumber(42).Int() = %v after mutating the argument, want 42", n.Int())
	}
	n.Int().SetInt64(99)
	if n.Int().Int64() != 42 {
		t.Errorf("exactNumber(42).Int() = %v after mutating a returned copy, want 42", n.Int())
	}
}
