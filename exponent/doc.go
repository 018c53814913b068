// Package exponent implements base^power scale factors over a closed set
// of bases, the exact backbone of magnitude prefixes (kilo, kibi, milli…).
//
// 🚀 What is an Exponent?
//
//	A pair (base, power) standing for the number base**power. Keeping
//	factors in this symbolic form lets magnitudes compose without float
//	drift as long as the bases match:
//	  10^3 · 10^3  = 10^6        (powers add)
//	  10^3 / 10^-3 = 10^6        (powers subtract)
//	Only when bases differ does the algebra give up and hand back a
//	plain float64 — that asymmetry is deliberate and is surfaced as a
//	tagged Magnitude result.
//
// ✨ Key behaviors:
//   - Bases are whitelisted: Binary (2) and Decimal (10). Anything else
//     is rejected at construction and at ToBase.
//   - Value() stays finite for at least power ∈ [-308, 308] with base 10,
//     the full double-precision decade range.
//   - Equality and ordering compare evaluated magnitude, not the
//     (base, power) pair, so 2^10 equals its base-10 rewriting.
//   - Hash rounds the magnitude to HashPrecision decimal places before
//     hashing, absorbing ~1e-16 drift from repeated computation; Equal
//     applies the same rounding, so the two always agree.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dimens/exponent"
//
//	kilo, err := exponent.New(exponent.Decimal, 3)
//	if err != nil { ... }
//	mega, ok := kilo.Mul(kilo).Exact() // 10^6, ok == true
//
//	ratio := exponent.Kibi.Div(exponent.Kilo) // cross-base: plain 1.024
//	_ = ratio.Float()
//
// Errors:
//   - ErrUnsupportedBase — base outside {Binary, Decimal} at New or ToBase.
//   - ErrNonFinitePower  — NaN or ±Inf power at New.
//
// Complexity: every operation is O(1).
package exponent
