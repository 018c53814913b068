// SPDX-License-Identifier: MIT

// Package conv: the Linear variant, y = Factor·x.
package conv

// Linear scales a magnitude by a constant factor: y = Factor·x.
// The km→m conversion is Linear{Factor: 1000}.
type Linear struct {
	// Factor is the multiplicative constant. Zero makes the map
	// non-invertible.
	Factor float64
}

// Identity returns the neutral conversion, Linear{Factor: 1}.
func Identity() Linear { return Linear{Factor: 1} }

// Apply returns Factor·x.
func (l Linear) Apply(x float64) float64 { return l.Factor * x }

// Invertible reports Factor != 0.
func (l Linear) Invertible() bool { return l.Factor != 0 }

// Inverse returns Linear{1/Factor}, or ErrNotInvertible when Factor is 0.
func (l Linear) Inverse() (Map, error) {
	if !l.Invertible() {
		return nil, ErrNotInvertible
	}

	return Linear{Factor: 1 / l.Factor}, nil
}

// Equal compares factors within Tolerance.
func (l Linear) Equal(o Linear) bool { return within(l.Factor, o.Factor) }

// Hash returns a 64-bit hash of the factor rounded to the Tolerance
// precision; maps equal under Equal hash identically.
func (l Linear) Hash() uint64 { return hashParams(l.Factor) }
