package unit_test

import (
	"fmt"
	"math/big"

	"github.com/unitvalues/unit"
)

// This example renders a typesetting length given in feet, inches and picas
// as a single composite string.
func Example_typesetting() {
	metre := unit.NewUnit("m", "length")
	foot := metre.Multiply(0.3048, "ft")
	inch := metre.Multiply(0.0254, "in")
	pica := metre.Multiply(0.0042, "P̸")

	mixedRadix := unit.OfPrimary(foot).Mix(inch).Mix(pica)
	q, err := mixedRadix.CreateQuantity(1, 2, 3)
	if err != nil {
		panic(err)
	}

	opts := unit.NewMixedRadixFormatOptions().
		WithRealFormat(unit.FormatReal(3, true))
	s, err := mixedRadix.Format(q, opts)
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output:
	// 1 ft 2 in 3. P̸
}

// This example converts a temperature reading from degree Celsius to kelvin.
func Example_temperatureConversion() {
	kelvin := unit.NewUnit("K", "temperature")
	celsius := kelvin.Shift(273.15, "°C")

	c, err := celsius.ConverterTo(kelvin)
	if err != nil {
		panic(err)
	}
	fmt.Println(c.ConvertFloat64(26.85))
	// Output:
	// 300
}

func ExampleMustNewPower() {
	c := unit.MustNewPower(10, 3)
	fmt.Println(c)
	// Output:
	// PowerConverter(10^3)
}

func ExamplePowerConverter_ConvertInt() {
	kilo := unit.MustNewPower(10, 3)
	n, err := kilo.ConvertInt(big.NewInt(7))
	if err != nil {
		panic(err)
	}
	fmt.Println(n, n.IsExact())

	deci := unit.MustNewPower(10, -1)
	n, err = deci.ConvertInt(big.NewInt(7))
	if err != nil {
		panic(err)
	}
	fmt.Println(n, n.IsExact())
	// Output:
	// 7000 true
	// 0.7 false
}

func ExampleNewRationalFromInt64() {
	c, err := unit.NewRationalFromInt64(1, 12)
	if err != nil {
		panic(err)
	}
	fmt.Println(c)
	fmt.Println(c.Inverse())
	// Output:
	// RationalConverter(1/12)
	// RationalConverter(12/1)
}

func ExampleRationalConverter_Compose() {
	twelfth := unit.MustNewRationalFromInt64(1, 12)
	thirtySixth := twelfth.Compose(unit.MustNewRationalFromInt64(1, 3))
	fmt.Println(thirtySixth)
	// Output:
	// RationalConverter(1/36)
}

func ExampleUnit_Transformed() {
	foot := unit.NewUnit("ft", "length")
	inch := foot.Transformed("in", unit.MustNewRationalFromInt64(1, 12))

	c, err := inch.ConverterTo(foot)
	if err != nil {
		panic(err)
	}
	n, err := c.ConvertInt(big.NewInt(36))
	if err != nil {
		panic(err)
	}
	fmt.Println(n)
	// Output:
	// 3
}

func ExampleUnit_Prefixed() {
	metre := unit.NewUnit("m", "length")
	kilometre := metre.Prefixed(unit.Kilo, "km")

	c, err := kilometre.ConverterTo(metre)
	if err != nil {
		panic(err)
	}
	fmt.Println(c.ConvertFloat64(7))
	// Output:
	// 7000
}

func ExampleQuantity_To() {
	metre := unit.NewUnit("m", "length")
	kilometre := metre.Prefixed(unit.Kilo, "km")

	q, err := unit.NewQuantity(2500, metre).To(kilometre)
	if err != nil {
		panic(err)
	}
	fmt.Println(q)
	// Output:
	// 2.5 km
}
