// Package vector: ready-made base and derived vectors.
//
// Base vectors carry a single unit exponent on one axis; derived vectors
// are the usual mechanical/electrical combinations, built through the
// same exact algebra callers use.
package vector

import "fmt"

// Base returns the unit vector of axis d (exponent 1 on d, zero
// elsewhere). It panics on an out-of-range Dimension: axes are a closed
// compile-time set, so a bad value is a programmer error, not input.
func Base(d Dimension) Vector {
	if d < Time || d >= NumDimensions {
		panic(fmt.Sprintf("vector: Base(%d): dimension out of range", d))
	}

	var v Vector
	v.exps[d].SetInt64(1)

	return v
}

// Dimensionless returns the all-zero vector, the identity of Add.
func Dimensionless() Vector { return Vector{} }

// Frequency returns T⁻¹.
func Frequency() Vector { return Base(Time).Neg() }

// Velocity returns L¹·T⁻¹.
func Velocity() Vector { return Base(Length).Sub(Base(Time)) }

// Acceleration returns L¹·T⁻².
func Acceleration() Vector { return Velocity().Sub(Base(Time)) }

// Force returns M¹·L¹·T⁻².
func Force() Vector { return Base(Mass).Add(Acceleration()) }

// Energy returns M¹·L²·T⁻².
func Energy() Vector { return Force().Add(Base(Length)) }

// Power returns M¹·L²·T⁻³.
func Power() Vector { return Energy().Sub(Base(Time)) }

// Charge returns I¹·T¹, the SI coulomb signature.
func Charge() Vector { return Base(Current).Add(Base(Time)) }

// StatCharge returns M^1/2·L^3/2·T⁻¹, the CGS-ESU charge signature.
// The Gaussian basis transform pushes half-integer exponents onto mass
// and length, which is why components are rationals rather than ints.
func StatCharge() Vector {
	var v Vector
	v.exps[Mass].SetFrac64(1, 2)
	v.exps[Length].SetFrac64(3, 2)
	v.exps[Time].SetInt64(-1)

	return v
}
