package unit

// Prefix represents a named power factor, such as the SI "kilo" or the
// binary "kibi". A prefix converts to an exact [PowerConverter] via
// [NewPowerFromPrefix], and scales a unit via [Unit.Prefixed].
// The zero value yields the identity converter.
type Prefix struct {
	name     string
	symbol   string
	base     int
	exponent int
}

// SI decimal prefixes.
var (
	Yotta = Prefix{"yotta", "Y", 10, 24}
	Zetta = Prefix{"zetta", "Z", 10, 21}
	Exa   = Prefix{"exa", "E", 10, 18}
	Peta  = Prefix{"peta", "P", 10, 15}
	Tera  = Prefix{"tera", "T", 10, 12}
	Giga  = Prefix{"giga", "G", 10, 9}
	Mega  = Prefix{"mega", "M", 10, 6}
	Kilo  = Prefix{"kilo", "k", 10, 3}
	Hecto = Prefix{"hecto", "h", 10, 2}
	Deca  = Prefix{"deca", "da", 10, 1}
	Deci  = Prefix{"deci", "d", 10, -1}
	Centi = Prefix{"centi", "c", 10, -2}
	Milli = Prefix{"milli", "m", 10, -3}
	Micro = Prefix{"micro", "µ", 10, -6}
	Nano  = Prefix{"nano", "n", 10, -9}
	Pico  = Prefix{"pico", "p", 10, -12}
	Femto = Prefix{"femto", "f", 10, -15}
	Atto  = Prefix{"atto", "a", 10, -18}
	Zepto = Prefix{"zepto", "z", 10, -21}
	Yocto = Prefix{"yocto", "y", 10, -24}
)

// IEC binary prefixes.
var (
	Kibi = Prefix{"kibi", "Ki", 1024, 1}
	Mebi = Prefix{"mebi", "Mi", 1024, 2}
	Gibi = Prefix{"gibi", "Gi", 1024, 3}
	Tebi = Prefix{"tebi", "Ti", 1024, 4}
	Pebi = Prefix{"pebi", "Pi", 1024, 5}
	Exbi = Prefix{"exbi", "Ei", 1024, 6}
)

// Name returns the prefix name, such as "kilo".
func (p Prefix) Name() string {
	return p.name
}

// Symbol returns the prefix symbol, such as "k".
func (p Prefix) Symbol() string {
	return p.symbol
}

// Base returns the base of the prefix factor.
func (p Prefix) Base() int {
	return p.base
}

// Exponent returns the exponent of the prefix factor.
func (p Prefix) Exponent() int {
	return p.exponent
}

// String method implements the [fmt.Stringer] interface and returns the
// prefix symbol.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p Prefix) String() string {
	return p.symbol
}
