// Package exponent: the Exponent value type — construction, evaluation,
// base changes, ordering and hashing.
package exponent

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Sentinel errors for exponent construction and base changes.
var (
	// ErrUnsupportedBase indicates a base outside the {Binary, Decimal}
	// whitelist, at New or as a ToBase target.
	ErrUnsupportedBase = errors.New("exponent: unsupported base")

	// ErrNonFinitePower indicates a NaN or ±Inf power at New.
	ErrNonFinitePower = errors.New("exponent: power is NaN or Inf")
)

// HashPrecision is the number of decimal places the magnitude is rounded
// to before hashing and equality. 12 places absorb the ~1e-16 relative
// drift of repeated float computation while still separating every
// whole-power magnitude in the supported range.
const HashPrecision = 12

// Base is a whitelisted exponent base.
type Base int

const (
	// Binary is base 2 (kibi, mebi, gibi, …).
	Binary Base = 2

	// Decimal is base 10 (kilo, mega, milli, …).
	Decimal Base = 10
)

// valid reports whether b is on the whitelist.
func (b Base) valid() bool { return b == Binary || b == Decimal }

// Exponent is the immutable scale factor base**power.
// The zero Exponent is not valid; construct through New or the prefix
// variables (Kilo, Kibi, …).
type Exponent struct {
	base  Base
	power float64
}

// New returns the Exponent base**power. The base must be Binary or
// Decimal and the power finite.
func New(base Base, power float64) (Exponent, error) {
	if !base.valid() {
		return Exponent{}, ErrUnsupportedBase
	}
	if math.IsNaN(power) || math.IsInf(power, 0) {
		return Exponent{}, ErrNonFinitePower
	}

	return Exponent{base: base, power: power}, nil
}

// Parts returns the (base, power) pair.
func (e Exponent) Parts() (Base, float64) { return e.base, e.power }

// Value returns base**power as a float64. Finite for at least
// power ∈ [-308, 308] with base Decimal.
func (e Exponent) Value() float64 { return math.Pow(float64(e.base), e.power) }

// ToBase rewrites the same magnitude over another whitelisted base via a
// change-of-base logarithm: 2^10 becomes 10^(10·log10 2) ≈ 10^3.0103.
func (e Exponent) ToBase(b Base) (Exponent, error) {
	if !b.valid() {
		return Exponent{}, ErrUnsupportedBase
	}
	if b == e.base {
		return e, nil
	}

	return Exponent{base: b, power: e.power * math.Log(float64(e.base)) / math.Log(float64(b))}, nil
}

// canonical returns the magnitude expressed as a base-10 power. Working
// on the power axis keeps comparison and hashing overflow-free even
// where Value() would saturate to +Inf.
func (e Exponent) canonical() float64 {
	if e.base == Decimal {
		return e.power
	}

	return e.power * math.Log10(float64(e.base))
}

// rounded returns the canonical power rounded to HashPrecision places.
func (e Exponent) rounded() decimal.Decimal {
	return decimal.NewFromFloat(e.canonical()).Round(HashPrecision)
}

// Compare orders two Exponents by evaluated magnitude: -1 when e < o,
// 0 when equal, +1 when e > o. Bases need not match.
func (e Exponent) Compare(o Exponent) int {
	a, b := e.canonical(), o.canonical()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether e's magnitude is strictly below o's.
func (e Exponent) Less(o Exponent) bool { return e.Compare(o) < 0 }

// Equal reports whether two Exponents denote the same magnitude within
// the HashPrecision rounding, whatever their bases: 2^10 equals its
// ToBase(Decimal) rewriting. Coherent with Hash by construction.
func (e Exponent) Equal(o Exponent) bool {
	return e.rounded().Equal(o.rounded())
}

// Hash returns a 64-bit hash of the rounded magnitude. Exponents equal
// under Equal hash identically, including across bases and across powers
// differing only by float drift below the rounding precision.
func (e Exponent) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(e.rounded().String()))

	return h.Sum64()
}

// String renders the symbolic form, e.g. "10^-3" or "2^10".
func (e Exponent) String() string {
	return strconv.Itoa(int(e.base)) + "^" + strconv.FormatFloat(e.power, 'g', -1, 64)
}

// GoString renders the debug form, e.g. "Exponent(base=10, power=-3)".
func (e Exponent) GoString() string {
	return fmt.Sprintf("Exponent(base=%d, power=%s)", int(e.base), strconv.FormatFloat(e.power, 'g', -1, 64))
}
