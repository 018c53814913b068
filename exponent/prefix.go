// Package exponent: ready-made SI decimal and IEC binary prefixes.
package exponent

// SI decimal prefixes, smallest to largest.
var (
	Pico  = Exponent{base: Decimal, power: -12}
	Nano  = Exponent{base: Decimal, power: -9}
	Micro = Exponent{base: Decimal, power: -6}
	Milli = Exponent{base: Decimal, power: -3}
	Centi = Exponent{base: Decimal, power: -2}
	Deci  = Exponent{base: Decimal, power: -1}
	Deca  = Exponent{base: Decimal, power: 1}
	Hecto = Exponent{base: Decimal, power: 2}
	Kilo  = Exponent{base: Decimal, power: 3}
	Mega  = Exponent{base: Decimal, power: 6}
	Giga  = Exponent{base: Decimal, power: 9}
	Tera  = Exponent{base: Decimal, power: 12}
	Peta  = Exponent{base: Decimal, power: 15}
)

// IEC binary prefixes.
var (
	Kibi = Exponent{base: Binary, power: 10}
	Mebi = Exponent{base: Binary, power: 20}
	Gibi = Exponent{base: Binary, power: 30}
	Tebi = Exponent{base: Binary, power: 40}
	Pebi = Exponent{base: Binary, power: 50}
)
