// SPDX-License-Identifier: MIT

// Package conv implements unit-conversion morphisms: pure numeric maps
// between magnitudes of two units sharing one dimension, with defined
// composition and inversion.
//
// 🚀 What is a conversion map?
//
//	A function y = m(x) taking a magnitude in one unit to the same
//	physical amount in another unit of the same dimension:
//	  km → m          Linear{Factor: 1000}
//	  °C → °F         Affine{Scale: 1.8, Offset: 32}
//	  °C → K → °R     Compose(...) of the two legs
//
// ✨ Key behaviors:
//   - Three variants close the hierarchy: Linear (y = f·x), Affine
//     (y = s·x + o) and Composed (outer ∘ inner) as the generic fallback.
//   - Compose(outer, inner) returns a closed-form map when both operands
//     are the same concrete kind — Linear∘Linear stays Linear,
//     Affine∘Affine stays Affine — and a Composed wrapper otherwise.
//     The closed form evaluates bit-compatibly with applying the two
//     maps in sequence.
//   - Inverse() round-trips: m.Inverse().Apply(m.Apply(x)) == x within
//     float tolerance. Non-invertible maps (zero factor or scale, or a
//     Composed with a non-invertible leg) return ErrNotInvertible;
//     invertibility is checked up front, never discovered by dividing.
//   - Linear and Affine define Equal and Hash with absolute parameter
//     tolerance Tolerance (1e-12), rounded the same way for both, so
//     equality and hashing never disagree. Composed defines neither:
//     structural equality of a composition tree is not a supported query.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dimens/conv"
//
//	c2f := conv.Affine{Scale: 1.8, Offset: 32}
//	f2c, err := c2f.Inverse()
//	if err != nil { ... }
//	boiling := c2f.Apply(100) // 212
//	back := f2c.Apply(boiling) // 100
//
//	kmToCm := conv.Compose(conv.Linear{Factor: 100}, conv.Linear{Factor: 1000})
//	// kmToCm is Linear{Factor: 100000}, not a wrapper
//
// Errors:
//   - ErrNotInvertible — Inverse() on a map whose factor/scale is zero or
//     whose composition contains such a leg.
//   - ErrNilMap        — a nil Map handed to Compose or inside Composed.
//
// Everything here is an immutable value; maps are safe to share across
// goroutines without locks.
package conv
