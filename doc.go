// Package dimens is your in-memory toolkit for exact dimensional algebra
// and composable unit-conversion morphisms — from rational exponent
// vectors to affine conversion maps.
//
// 🚀 What is dimens?
//
//	A small, pure-value library that brings together:
//		• Exponent vectors: the 8-component dimensional signature of a
//		  physical quantity (time, length, mass, current, temperature,
//		  luminous intensity, amount of substance, information) with
//		  exact rational arithmetic — no floating drift, ever
//		• Scale exponents: base^power magnitudes (kilo, kibi, milli, …)
//		  that compose algebraically while their bases match
//		• Conversion maps: linear, affine and composed morphisms between
//		  unit magnitudes, with closed-form composition and inversion
//
// ✨ Why choose dimens?
//
//   - Exact by default – Vector components are rationals, so 1/3 · 3 == 1
//   - Pure values – every operation returns a new value, nothing mutates,
//     so instances are safe to share across goroutines without locks
//   - Algebra-first – composition, inversion and invertibility are
//     first-class operations with documented laws
//   - Pure Go – no cgo, no hidden machinery
//
// Everything is organized under three subpackages:
//
//	vector/   — dimensional exponent vectors over exact rationals
//	exponent/ — base^power scale factors and SI/binary prefixes
//	conv/     — linear/affine/composed conversion morphisms
//
// Quick example:
//
//	force := vector.Force()                        // M·L·T⁻²
//	kilo, _ := exponent.New(exponent.Decimal, 3)   // 10^3
//	c2f := conv.Affine{Scale: 1.8, Offset: 32}
//	f := c2f.Apply(100)                            // 212
//
// A full unit type would pair one Vector (what dimension) with one Map
// (how to convert magnitudes within that dimension); the pairing is left
// to the caller, and there is deliberately no global unit registry.
//
//	go get github.com/katalvlaran/dimens
package dimens
