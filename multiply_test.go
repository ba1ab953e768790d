package unit

import (
	"math"
	"math/big"
	"testing"
)

func TestNewMultiply(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			factor       float64
			wantIdentity bool
		}{
			{0.3048, false},
			{1, true},
			{-2.5, false},
		}
		for _, tt := range tests {
			got, err := NewMultiply(tt.factor)
			if err != nil {
				t.Errorf("NewMultiply(%v) failed: %v", tt.factor, err)
				continue
			}
			if got.Factor() != tt.factor {
				t.Errorf("NewMultiply(%v) = %q, want factor %v", tt.factor, got, tt.factor)
			}
			if got.IsIdentity() != tt.wantIdentity {
				t.Errorf("NewMultiply(%v).IsIdentity() = %v, want %v", tt.factor, got.IsIdentity(), tt.wantIdentity)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []float64{0, math.Inf(1), math.Inf(-1), math.NaN()}
		for _, factor := range tests {
			_, err := NewMultiply(factor)
			if err == nil {
				t.Errorf("NewMultiply(%v) did not fail", factor)
			}
		}
	})
}

func TestMultiplyConverter_Compose(t *testing.T) {
	c := MustNewMultiply(2.5)
	d := MustNewMultiply(4)
	got := c.Compose(d)
	want := MustNewMultiply(10)
	if !got.Equal(want) {
		t.Errorf("%q.Compose(%q) = %q, want %q", c, d, got, want)
	}
}

func TestMultiplyConverter_Inverse(t *testing.T) {
	c := MustNewMultiply(4)
	want := MustNewMultiply(0.25)
	got := c.Inverse()
	if !got.Equal(want) {
		t.Errorf("%q.Inverse() = %q, want %q", c, got, want)
	}
}

func TestMultiplyConverter_ConvertInt(t *testing.T) {
	c := MustNewMultiply(0.5)
	got, err := c.ConvertInt(big.NewInt(7))
	if err != nil {
		t.Errorf("%q.ConvertInt(7) failed: %v", c, err)
	}
	if got.IsExact() {
		t.Errorf("%q.ConvertInt(7).IsExact() = true, want false", c)
	}
	if got.String() != "3.5" {
		t.Errorf("%q.ConvertInt(7) = %q, want %q", c, got, "3.5")
	}

	t.Run("identity", func(t *testing.T) {
		c := MustNewMultiply(1)
		got, err := c.ConvertInt(big.NewInt(7))
		if err != nil {
			t.Errorf("%q.ConvertInt(7) failed: %v", c, err)
		}
		if !got.IsExact() || got.String() != "7" {
			t.Errorf("%q.ConvertInt(7) = %q, want exact 7", c, got)
		}
	})
}

func TestNewAdd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			offset       float64
			wantIdentity bool
			wantLinear   bool
		}{
			{273.15, false, false},
			{0, true, false},
			{-40, false, false},
		}
		for _, tt := range tests {
			got, err := NewAdd(tt.offset)
			if err != nil {
				t.Errorf("NewAdd(%v) failed: %v", tt.offset, err)
				continue
			}
			if got.Offset() != tt.offset {
				t.Errorf("NewAdd(%v) = %q, want offset %v", tt.offset, got, tt.offset)
			}
			if got.IsIdentity() != tt.wantIdentity {
				t.Errorf("NewAdd(%v).IsIdentity() = %v, want %v", tt.offset, got.IsIdentity(), tt.wantIdentity)
			}
			if got.IsLinear() != tt.wantLinear {
				t.Errorf("NewAdd(%v).IsLinear() = %v, want %v", tt.offset, got.IsLinear(), tt.wantLinear)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []float64{math.Inf(1), math.NaN()}
		for _, offset := range tests {
			_, err := NewAdd(offset)
			if err == nil {
				t.Errorf("NewAdd(%v) did not fail", offset)
			}
		}
	})
}

func TestAddConverter_Compose(t *testing.T) {
	t.Run("offsets sum", func(t *testing.T) {
		c := MustNewAdd(10)
		d := MustNewAdd(-4)
		got := c.Compose(d)
		want := MustNewAdd(6)
		if !got.Equal(want) {
			t.Errorf("%q.Compose(%q) = %q, want %q", c, d, got, want)
		}
	})

	t.Run("chain", func(t *testing.T) {
		// kelvin to fahrenheit: multiply by 9/5, then subtract 459.67
		c := MustNewAdd(-459.67)
		d := MustNewMultiply(1.8)
		got := c.Compose(d)
		if got.IsLinear() {
			t.Errorf("%q.Compose(%q).IsLinear() = true, want false", c, d)
		}
		if f := got.ConvertFloat64(273.15); math.Abs(f-32) > 1e-9 {
			t.Errorf("%q.Compose(%q).ConvertFloat64(273.15) = %v, want 32", c, d, f)
		}
	})
}

func TestAddConverter_Inverse(t *testing.T) {
	c := MustNewAdd(273.15)
	want := MustNewAdd(-273.15)
	got := c.Inverse()
	if !got.Equal(want) {
		t.Errorf("%q.Inverse() = %q, want %q", c, got, want)
	}
	if round := c.Compose(got); !round.IsIdentity() {
		t.Errorf("%q.Compose(%q).IsIdentity() = false, want true", c, got)
	}
}

func TestAddConverter_ConvertInt(t *testing.T) {
	c := MustNewAdd(0.5)
	got, err := c.ConvertInt(big.NewInt(7))
	if err != nil {
		t.Errorf("%q.ConvertInt(7) failed: %v", c, err)
	}
	if got.IsExact() {
		t.Errorf("%q.ConvertInt(7).IsExact() = true, want false", c)
	}
	if got.String() != "7.5" {
		t.Errorf("%q.ConvertInt(7) = %q, want %q", c, got, "7.5")
	}
}
