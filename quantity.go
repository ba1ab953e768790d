package unit

import (
	"fmt"
	"strconv"
)

// Quantity represents a numeric value expressed in a unit.
// The zero value is the dimensionless zero.
// Quantity is designed to be safe for concurrent use by multiple goroutines.
type Quantity struct {
	value float64
	unit  Unit
}

// NewQuantity returns a quantity with the given value and unit.
func NewQuantity(value float64, u Unit) Quantity {
	return Quantity{value: value, unit: u}
}

// Value returns the numeric value of the quantity.
func (q Quantity) Value() float64 {
	return q.value
}

// Unit returns the unit the quantity is expressed in.
func (q Quantity) Unit() Unit {
	return q.unit
}

// To returns the quantity re-expressed in the target unit.
//
// To returns an error if the units do not share a dimension.
func (q Quantity) To(target Unit) (Quantity, error) {
	c, err := q.unit.ConverterTo(target)
	if err != nil {
		return Quantity{}, fmt.Errorf("converting quantity: %w", err)
	}
	return Quantity{value: c.ConvertFloat64(q.value), unit: target}, nil
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the quantity, such as "1 ft".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (q Quantity) String() string {
	s := strconv.FormatFloat(q.value, 'g', -1, 64)
	if q.unit.symbol == "" {
		return s
	}
	return s + " " + q.unit.symbol
}
