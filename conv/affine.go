// SPDX-License-Identifier: MIT

// Package conv: the Affine variant, y = Scale·x + Offset.
package conv

// Affine scales and shifts a magnitude: y = Scale·x + Offset.
// The °C→°F conversion is Affine{Scale: 1.8, Offset: 32}.
type Affine struct {
	// Scale is the multiplicative constant. Zero makes the map
	// non-invertible.
	Scale float64

	// Offset is the additive constant.
	Offset float64
}

// Apply returns Scale·x + Offset.
func (a Affine) Apply(x float64) float64 { return a.Scale*x + a.Offset }

// Invertible reports Scale != 0.
func (a Affine) Invertible() bool { return a.Scale != 0 }

// Inverse returns Affine{1/Scale, -Offset/Scale}, or ErrNotInvertible
// when Scale is 0.
func (a Affine) Inverse() (Map, error) {
	if !a.Invertible() {
		return nil, ErrNotInvertible
	}

	return Affine{Scale: 1 / a.Scale, Offset: -a.Offset / a.Scale}, nil
}

// Equal compares both parameters within Tolerance.
func (a Affine) Equal(o Affine) bool {
	return within(a.Scale, o.Scale) && within(a.Offset, o.Offset)
}

// Hash returns a 64-bit hash of both parameters rounded to the Tolerance
// precision; maps equal under Equal hash identically.
func (a Affine) Hash() uint64 { return hashParams(a.Scale, a.Offset) }
