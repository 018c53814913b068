// Package vector implements the dimensional exponent vector: the
// 8-component signature describing how a physical quantity scales with
// each base dimension.
//
// 🚀 What is a dimensional vector?
//
//	Every physical quantity has a dimensionality expressible as a tuple
//	of exponents over the SI base dimensions plus information:
//	  speed    = L¹·T⁻¹      → (T:-1, L:1)
//	  force    = M¹·L¹·T⁻²   → (T:-2, L:1, M:1)
//	  charge   = I¹·T¹       → (T:1, I:1)
//	Multiplying quantities adds their vectors; dividing subtracts them.
//
// ✨ Key guarantees:
//   - Exact rational components (math/big.Rat) — repeated scaling and
//     cancellation never drift: Frac(1,3) scaled by 3 is exactly 1.
//   - Float inputs are read as exact decimal fractions (0.5 → 1/2),
//     never as binary approximations.
//   - Pure values: Add/Sub/Neg/Scale always return a new Vector and
//     never touch their operands, so Vectors are safe to share freely.
//   - Fixed arity: Len() is always 8, component order is part of the
//     contract (Time, Length, Mass, Current, Temperature,
//     LuminousIntensity, AmountOfSubstance, Information).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dimens/vector"
//
//	speed, err := vector.New(vector.Int(-1), vector.Int(1))
//	if err != nil { ... }
//
//	area := vector.Base(vector.Length).Add(vector.Base(vector.Length))
//	volume := area.Add(vector.Base(vector.Length))
//	density := vector.Base(vector.Mass).Sub(volume)
//
// Errors:
//   - ErrTooManyExponents — New received more than 8 components.
//   - ErrNonFiniteScalar  — Float was given NaN or ±Inf.
//   - ErrZeroDenominator  — Frac was given a zero denominator.
//   - ErrNilRat           — Rat was given a nil *big.Rat.
//   - ErrBadDimension     — Exponent was asked for an out-of-range axis.
//
// Complexity: every operation is O(8), i.e. constant time.
package vector
