package unit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	errTooManyValues = errors.New("too many values")
	errNoPrimaryUnit = errors.New("no primary unit")
)

// radixEpsilon absorbs floating-point representation error when the greedy
// decomposition sits on an integer boundary.
const radixEpsilon = 1e-9

// MixedRadix represents a composite quantity built from an ordered chain of
// units: one primary unit followed by ever smaller secondary units, such as
// feet, inches and picas. The caller declares the units in descending
// magnitude; the chain trusts the declaration order and does not re-sort.
//
// A chain is built fluently with [OfPrimary] and [MixedRadix.Mix] and is
// immutable afterwards, so it is safe for concurrent use by multiple
// goroutines.
type MixedRadix struct {
	units []Unit // primary first, then mixed-in units in descending magnitude
}

// OfPrimary returns a chain holding only the given primary unit, the unit
// the composite quantity is ultimately expressed in.
func OfPrimary(u Unit) MixedRadix {
	return MixedRadix{units: []Unit{u}}
}

// Mix returns a new chain extended by one more, smaller unit.
// The receiver is left unchanged and remains valid.
//
// Mix panics if the unit's dimension differs from the primary unit's
// dimension.
func (m MixedRadix) Mix(u Unit) MixedRadix {
	if len(m.units) == 0 {
		panic(fmt.Sprintf("MixedRadix.Mix(%v) failed: %v", u, errNoPrimaryUnit))
	}
	if u.Dimension() != m.units[0].Dimension() {
		panic(fmt.Sprintf("%v.Mix(%v) failed: %v", m, u, errUnitMismatch))
	}
	units := make([]Unit, len(m.units), len(m.units)+1)
	copy(units, m.units)
	return MixedRadix{units: append(units, u)}
}

// PrimaryUnit returns the first unit of the chain.
func (m MixedRadix) PrimaryUnit() Unit {
	if len(m.units) == 0 {
		return Unit{}
	}
	return m.units[0]
}

// Units returns a copy of the chain's units, primary first.
func (m MixedRadix) Units() []Unit {
	units := make([]Unit, len(m.units))
	copy(units, m.units)
	return units
}

// Len returns the number of units in the chain.
func (m MixedRadix) Len() int {
	return len(m.units)
}

// CreateQuantity returns a single quantity expressed in the primary unit,
// summing one value per unit of the chain: values[0] counts the primary
// unit, values[1] the first mixed-in unit, and so on.
// Trailing units without a value contribute zero.
// The summation is performed in floating point; this is a convenience
// quantity, not a precision-critical conversion result.
//
// CreateQuantity returns an error if more values are supplied than the
// chain has units.
func (m MixedRadix) CreateQuantity(values ...float64) (Quantity, error) {
	if len(m.units) == 0 {
		return Quantity{}, fmt.Errorf("creating quantity: %w", errNoPrimaryUnit)
	}
	if len(values) > len(m.units) {
		return Quantity{}, fmt.Errorf("creating quantity: %v value(s) supplied, but the chain has only %v unit(s): %w",
			len(values), len(m.units), errTooManyValues)
	}
	primary := m.units[0]
	total := 0.0
	for i, v := range values {
		c, err := m.units[i].ConverterTo(primary)
		if err != nil {
			return Quantity{}, fmt.Errorf("creating quantity: %w", err)
		}
		total += c.ConvertFloat64(v)
	}
	return Quantity{value: total, unit: primary}, nil
}

// ExtractValues decomposes a quantity into one value per unit of the chain.
// Every unit but the last receives the integer count of that unit fitting
// into what remains of the quantity; the last, smallest unit receives the
// leftover as a real number, not truncated.
// A chain of length one receives the full value.
//
// ExtractValues returns an error if the quantity's unit is not convertible
// to the chain's primary unit.
func (m MixedRadix) ExtractValues(q Quantity) ([]float64, error) {
	if len(m.units) == 0 {
		return nil, fmt.Errorf("extracting values: %w", errNoPrimaryUnit)
	}
	primary := m.units[0]
	c, err := q.Unit().ConverterTo(primary)
	if err != nil {
		return nil, fmt.Errorf("extracting values: %w", err)
	}
	remaining := c.ConvertFloat64(q.Value())
	values := make([]float64, len(m.units))
	last := len(m.units) - 1
	for i, u := range m.units {
		toUnit, err := primary.ConverterTo(u)
		if err != nil {
			return nil, fmt.Errorf("extracting values: %w", err)
		}
		amount := toUnit.ConvertFloat64(remaining)
		if i == last {
			values[i] = amount
			break
		}
		count := math.Floor(amount + radixEpsilon)
		values[i] = count
		remaining = toUnit.Inverse().ConvertFloat64(amount - count)
	}
	return values, nil
}

// Format renders a quantity as its decomposed radix parts, such as
// "1 ft 2 in 3. P̸": every part but the last shows its value as a plain
// integer, the last part goes through the real-number formatter, and each
// value is followed by the delimiter and the unit symbol.
// Trailing parts whose value round-trips to zero are omitted, so a chain of
// feet and inches built from a single foot value renders as "1 ft".
//
// Format returns an error if the quantity's unit is not convertible to the
// chain's primary unit.
func (m MixedRadix) Format(q Quantity, opts MixedRadixFormatOptions) (string, error) {
	values, err := m.ExtractValues(q)
	if err != nil {
		return "", fmt.Errorf("formatting quantity: %w", err)
	}
	realFormat := opts.realFormat
	if realFormat == nil {
		realFormat = func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	}
	unitFormat := opts.unitFormat
	if unitFormat == nil {
		unitFormat = Unit.Symbol
	}
	last := len(values) - 1
	for last > 0 && math.Abs(values[last]) < radixEpsilon {
		last--
	}
	var b strings.Builder
	for i := 0; i <= last; i++ {
		if i > 0 {
			b.WriteString(opts.radixParts)
		}
		if i == len(m.units)-1 {
			b.WriteString(realFormat(values[i]))
		} else {
			b.WriteString(strconv.FormatInt(int64(values[i]), 10))
		}
		b.WriteString(opts.numberToUnit)
		b.WriteString(unitFormat(m.units[i]))
	}
	return b.String(), nil
}

// String method implements the [fmt.Stringer] interface and returns the
// chain's unit symbols, such as "MixedRadix(ft in P̸)".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m MixedRadix) String() string {
	symbols := make([]string, len(m.units))
	for i, u := range m.units {
		symbols[i] = u.Symbol()
	}
	return "MixedRadix(" + strings.Join(symbols, " ") + ")"
}

// MixedRadixFormatOptions configures [MixedRadix.Format].
// Options are built fluently starting from [NewMixedRadixFormatOptions];
// every With method returns a new value, leaving the receiver unchanged,
// and each setting is independently overridable.
type MixedRadixFormatOptions struct {
	realFormat   func(float64) string
	unitFormat   func(Unit) string
	numberToUnit string
	radixParts   string
}

// NewMixedRadixFormatOptions returns the default options: plain shortest
// floating-point rendering for the final part, unit symbols via
// [Unit.Symbol], and a single space for both delimiters.
func NewMixedRadixFormatOptions() MixedRadixFormatOptions {
	return MixedRadixFormatOptions{numberToUnit: " ", radixParts: " "}
}

// WithRealFormat sets the formatter for the final fractional part.
// See also [FormatReal].
func (o MixedRadixFormatOptions) WithRealFormat(f func(float64) string) MixedRadixFormatOptions {
	o.realFormat = f
	return o
}

// WithUnitFormat sets the renderer for unit symbols.
func (o MixedRadixFormatOptions) WithUnitFormat(f func(Unit) string) MixedRadixFormatOptions {
	o.unitFormat = f
	return o
}

// WithNumberToUnitDelimiter sets the text inserted between a number and its
// unit symbol.
func (o MixedRadixFormatOptions) WithNumberToUnitDelimiter(s string) MixedRadixFormatOptions {
	o.numberToUnit = s
	return o
}

// WithRadixPartsDelimiter sets the text inserted between successive radix
// parts.
func (o MixedRadixFormatOptions) WithRadixPartsDelimiter(s string) MixedRadixFormatOptions {
	o.radixParts = s
	return o
}

// FormatReal returns a real-part formatter rendering at most
// maxFractionDigits digits after the decimal point, with trailing zeros
// removed. When alwaysShowPoint is true the decimal point is kept even for
// whole numbers, rendering 3 as "3.".
func FormatReal(maxFractionDigits int, alwaysShowPoint bool) func(float64) string {
	return func(v float64) string {
		s := strconv.FormatFloat(v, 'f', maxFractionDigits, 64)
		if maxFractionDigits > 0 {
			s = strings.TrimRight(s, "0")
			if !alwaysShowPoint {
				s = strings.TrimSuffix(s, ".")
			}
		} else if alwaysShowPoint {
			s += "."
		}
		return s
	}
}
