// SPDX-License-Identifier: MIT

// Package conv: the Composed variant, outer ∘ inner.
package conv

// Composed chains two arbitrary maps: Apply(x) = Outer(Inner(x)).
// It is the fallback Compose reaches for when no closed form exists for
// the operand pair. Composed defines no Equal/Hash: structural equality
// of composition trees is not a supported query.
type Composed struct {
	// Outer applies second.
	Outer Map

	// Inner applies first.
	Inner Map
}

// Apply returns Outer(Inner(x)).
func (c Composed) Apply(x float64) float64 { return c.Outer.Apply(c.Inner.Apply(x)) }

// Invertible reports whether both legs are invertible; a nil leg is not.
func (c Composed) Invertible() bool {
	return c.Outer != nil && c.Inner != nil && c.Outer.Invertible() && c.Inner.Invertible()
}

// Inverse swaps and inverts both legs:
// (outer ∘ inner)⁻¹ = inner⁻¹ ∘ outer⁻¹.
func (c Composed) Inverse() (Map, error) {
	if c.Outer == nil || c.Inner == nil {
		return nil, ErrNilMap
	}
	if !c.Invertible() {
		return nil, ErrNotInvertible
	}

	outerInv, err := c.Outer.Inverse()
	if err != nil {
		return nil, err
	}
	innerInv, err := c.Inner.Inverse()
	if err != nil {
		return nil, err
	}

	return Composed{Outer: innerInv, Inner: outerInv}, nil
}
