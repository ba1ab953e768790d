/*
Package unit implements a unit-conversion algebra and a mixed-radix
composite-quantity engine built on top of it.
It leverages the [decimal] package's capabilities for handling decimal
floating-point numbers and combines them with arbitrary-precision integer
arithmetic so that conversions stay exact whenever the underlying
arithmetic allows it.

# Features

  - Immutable converters, units, quantities and chains, ensuring safe usage
    across multiple goroutines
  - Composable, invertible and comparable converters with algebraic
    simplification of composition
  - Exactness-preserving integer conversions with a documented decimal
    fallback
  - Mixed-radix chains with quantity construction, decomposition and
    configurable formatting

# Converters

A [Converter] is an immutable scaling or affine transformation between two
numeric representations of the same physical quantity. The variant set is
closed: [PowerConverter] (factor base^exponent), [RationalConverter]
(exact integer ratio), [MultiplyConverter] (approximate factor),
[AddConverter] (approximate offset), and an internal two-stage chain used
when composition cannot be simplified.

Composition simplifies algebraically where it can: power converters with a
shared base sum their exponents, power and rational converters combine into
exact rationals, and approximate factors multiply in floating point.
Composing with an affine converter produces a chain applied in sequence.

# Exactness

Each converter offers three conversion entry points. The
arbitrary-precision integer path returns an exact integer whenever the
arithmetic allows and silently degrades to decimal arithmetic otherwise;
the result is reported as a [Number]. The decimal path always rounds to a
caller-supplied scale. The floating-point path accepts the precision loss
of that representation. All three pass identity conversions through
untouched.

# Mixed radix

A [MixedRadix] chain expresses one quantity as an ordered tuple of
component amounts in successively smaller units, such as feet, inches and
picas. [MixedRadix.CreateQuantity] sums per-unit component values into a
quantity of the primary unit, [MixedRadix.ExtractValues] decomposes a
quantity back into those components, and [MixedRadix.Format] renders the
decomposition using [MixedRadixFormatOptions].

# Errors

Constructors return errors for invalid parameters, such as a zero power
base or a zero rational denominator. Contract violations, such as an
unsupported composition, panic. Precision degradation on the integer path
is not an error but a documented trade-off.

[decimal]: https://pkg.go.dev/github.com/govalues/decimal
*/
package unit
