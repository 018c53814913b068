// SPDX-License-Identifier: MIT

// Package conv: the Map capability, numeric policy and composition.
// This file defines ONLY the shared surface — the Map interface, the
// package sentinel errors, the tolerance policy constants and Compose.
// Concrete variants live in linear.go, affine.go and composed.go.
package conv

import (
	"errors"
	"hash/fnv"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Sentinel errors for conversion maps.
var (
	// ErrNotInvertible indicates Inverse() on a map with no inverse:
	// a zero Linear factor, a zero Affine scale, or a Composed map with a
	// non-invertible leg. Check Invertible() first to avoid it.
	ErrNotInvertible = errors.New("conv: map is not invertible")

	// ErrNilMap indicates a nil Map where a concrete one is required.
	ErrNilMap = errors.New("conv: nil map")
)

// Numeric policy.
const (
	// Tolerance is the absolute tolerance for Linear/Affine parameter
	// equality. Hashing rounds to the matching number of decimal places,
	// so Equal and Hash collapse the same pairs.
	Tolerance = 1e-12

	// hashPlaces is the decimal rounding used by parameter hashing,
	// aligned with Tolerance (10^-12).
	hashPlaces = 12
)

// Map is a unit-conversion morphism: a pure numeric function with an
// invertibility query and an inverse. Implementations are immutable
// values; Apply never has side effects.
//
// The variant set is closed: Linear, Affine and Composed. Composition
// sites switch exhaustively over these three.
type Map interface {
	// Apply converts one magnitude.
	Apply(x float64) float64

	// Invertible reports whether Inverse will succeed.
	Invertible() bool

	// Inverse returns the morphism undoing this one, or ErrNotInvertible.
	Inverse() (Map, error)
}

// Compose returns outer ∘ inner, the map applying inner first:
// Compose(o, i).Apply(x) == o.Apply(i.Apply(x)).
//
// When both operands are the same concrete kind the composition closes
// algebraically instead of wrapping:
//
//	Linear∘Linear → Linear{f1·f2}
//	Affine∘Affine → Affine{s1·s2, s1·o2 + o1}
//
// Every other pairing, nil operands included, yields a Composed wrapper;
// a nil leg surfaces as ErrNilMap when the wrapper is inverted.
func Compose(outer, inner Map) Map {
	switch o := outer.(type) {
	case Linear:
		if i, ok := inner.(Linear); ok {
			return Linear{Factor: o.Factor * i.Factor}
		}
	case Affine:
		if i, ok := inner.(Affine); ok {
			return Affine{Scale: o.Scale * i.Scale, Offset: o.Scale*i.Offset + o.Offset}
		}
	}

	return Composed{Outer: outer, Inner: inner}
}

// hashParams hashes float parameters rounded to hashPlaces decimals,
// keeping Hash coherent with tolerance-based Equal.
func hashParams(params ...float64) uint64 {
	h := fnv.New64a()
	for _, p := range params {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			// decimal cannot hold non-finite values; fall back to the raw bits.
			h.Write([]byte(strconv.FormatFloat(p, 'b', -1, 64)))
		} else {
			h.Write([]byte(decimal.NewFromFloat(p).Round(hashPlaces).String()))
		}
		h.Write([]byte{'|'})
	}

	return h.Sum64()
}

// within reports |a-b| <= Tolerance.
func within(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}

	return d <= Tolerance
}
