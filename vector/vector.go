// Package vector: Vector and Scalar value types, construction and identity.
//
// This file declares the Dimension axis enum, sentinel errors, the Scalar
// constructors (Int, Frac, Float, Rat) and the Vector type with its
// equality, hashing and rendering.
package vector

import (
	"errors"
	"hash/fnv"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Sentinel errors for vector construction and access.
var (
	// ErrTooManyExponents indicates New received more components than there
	// are dimensions.
	ErrTooManyExponents = errors.New("vector: more than 8 exponents")

	// ErrNonFiniteScalar indicates Float received NaN or ±Inf, which has no
	// exact rational reading.
	ErrNonFiniteScalar = errors.New("vector: scalar is NaN or Inf")

	// ErrZeroDenominator indicates Frac received a zero denominator.
	ErrZeroDenominator = errors.New("vector: zero denominator")

	// ErrNilRat indicates Rat received a nil *big.Rat.
	ErrNilRat = errors.New("vector: nil *big.Rat")

	// ErrBadDimension indicates a Dimension outside [Time, Information].
	ErrBadDimension = errors.New("vector: dimension out of range")
)

// Dimension indexes one axis of a Vector. The numeric order of the
// constants is the iteration and construction order and is part of the
// public contract.
type Dimension int

const (
	// Time (T) — seconds axis.
	Time Dimension = iota

	// Length (L) — metres axis.
	Length

	// Mass (M) — kilograms axis.
	Mass

	// Current (I) — amperes axis.
	Current

	// Temperature (Θ) — kelvins axis.
	Temperature

	// LuminousIntensity (J) — candelas axis.
	LuminousIntensity

	// AmountOfSubstance (N) — moles axis.
	AmountOfSubstance

	// Information (B) — bits axis, used by extended unit systems.
	Information

	// NumDimensions is the fixed arity of every Vector.
	NumDimensions
)

// symbols renders each axis in String output, in dimension order.
var symbols = [NumDimensions]string{"T", "L", "M", "I", "Θ", "J", "N", "B"}

// Scalar is one exact rational component, produced by Int, Frac, Float
// or Rat. A Scalar built from invalid input carries its error until New
// or Scale surfaces it; the zero Scalar is an exact zero.
type Scalar struct {
	rat *big.Rat
	err error
}

// Int returns a Scalar holding the exact integer n.
func Int[T constraints.Signed](n T) Scalar {
	return Scalar{rat: new(big.Rat).SetInt64(int64(n))}
}

// Frac returns a Scalar holding the exact fraction num/den.
// A zero den yields a Scalar carrying ErrZeroDenominator.
func Frac[T constraints.Signed](num, den T) Scalar {
	if den == 0 {
		return Scalar{err: ErrZeroDenominator}
	}

	return Scalar{rat: big.NewRat(int64(num), int64(den))}
}

// Float returns a Scalar holding x read as an exact decimal fraction:
// 0.5 becomes 1/2, 0.1 becomes 1/10 — never the nearest binary float.
// NaN and ±Inf yield a Scalar carrying ErrNonFiniteScalar.
func Float(x float64) Scalar {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Scalar{err: ErrNonFiniteScalar}
	}

	// decimal.NewFromFloat recovers the shortest decimal representation,
	// so the resulting rational matches the digits the caller wrote.
	return Scalar{rat: decimal.NewFromFloat(x).Rat()}
}

// Rat returns a Scalar holding a private copy of r.
// A nil r yields a Scalar carrying ErrNilRat.
func Rat(r *big.Rat) Scalar {
	if r == nil {
		return Scalar{err: ErrNilRat}
	}

	return Scalar{rat: new(big.Rat).Set(r)}
}

// Vector is an immutable 8-component exponent vector over exact
// rationals. The zero Vector is the dimensionless (all-zero) vector and
// is ready to use. Vectors are pure values: no method mutates its
// receiver or arguments.
type Vector struct {
	exps [NumDimensions]big.Rat
}

// New builds a Vector from up to 8 ordered components in dimension order
// (Time, Length, Mass, Current, Temperature, LuminousIntensity,
// AmountOfSubstance, Information); omitted components are zero.
// It returns ErrTooManyExponents past 8, or the deferred error of any
// invalid Scalar.
func New(exps ...Scalar) (Vector, error) {
	if len(exps) > int(NumDimensions) {
		return Vector{}, ErrTooManyExponents
	}

	var v Vector
	for i, s := range exps {
		if s.err != nil {
			return Vector{}, s.err
		}
		if s.rat != nil {
			v.exps[i].Set(s.rat)
		}
	}

	return v, nil
}

// Zero returns the dimensionless vector (all components zero).
func Zero() Vector { return Vector{} }

// Len reports the fixed arity of the vector: always 8, independent of
// which components are non-zero.
func (v Vector) Len() int { return int(NumDimensions) }

// Exponents returns the 8 components in dimension order as a fresh slice
// of fresh rationals; mutating them never affects v.
func (v Vector) Exponents() []*big.Rat {
	out := make([]*big.Rat, NumDimensions)
	for i := range v.exps {
		out[i] = new(big.Rat).Set(&v.exps[i])
	}

	return out
}

// Exponent returns a copy of the component on axis d,
// or ErrBadDimension when d is outside [Time, Information].
func (v Vector) Exponent(d Dimension) (*big.Rat, error) {
	if d < Time || d >= NumDimensions {
		return nil, ErrBadDimension
	}

	return new(big.Rat).Set(&v.exps[d]), nil
}

// IsZero reports whether every component is zero.
func (v Vector) IsZero() bool {
	for i := range v.exps {
		if v.exps[i].Sign() != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether all 8 components are pairwise equal. big.Rat
// keeps components normalized, so Int(1) and Frac(2,2) compare equal.
func (v Vector) Equal(o Vector) bool {
	for i := range v.exps {
		if v.exps[i].Cmp(&o.exps[i]) != 0 {
			return false
		}
	}

	return true
}

// Hash returns a 64-bit hash coherent with Equal: vectors that compare
// equal hash identically, whatever mix of Int/Frac/Float/Rat built them.
func (v Vector) Hash() uint64 {
	h := fnv.New64a()
	for i := range v.exps {
		// RatString is canonical for normalized rationals ("1", "-2", "1/2").
		h.Write([]byte(v.exps[i].RatString()))
		h.Write([]byte{'|'})
	}

	return h.Sum64()
}

// String renders the non-zero components in dimension order, e.g.
// "T^-2·L^1·M^1"; the dimensionless vector renders as "1".
func (v Vector) String() string {
	var b strings.Builder
	for i := range v.exps {
		if v.exps[i].Sign() == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("·")
		}
		b.WriteString(symbols[i])
		b.WriteString("^")
		b.WriteString(v.exps[i].RatString())
	}
	if b.Len() == 0 {
		return "1"
	}

	return b.String()
}
