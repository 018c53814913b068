package vector_test

import (
	"fmt"

	"github.com/katalvlaran/dimens/vector"
)

// ExampleVector_Add derives the dimensionality of energy from scratch:
// force (M·L·T⁻²) times length is energy (M·L²·T⁻²).
func ExampleVector_Add() {
	force := vector.Base(vector.Mass).
		Add(vector.Base(vector.Length)).
		Sub(vector.Base(vector.Time)).
		Sub(vector.Base(vector.Time))

	energy := force.Add(vector.Base(vector.Length))

	fmt.Println(force)
	fmt.Println(energy)
	fmt.Println(energy.Equal(vector.Energy()))
	// Output:
	// T^-2·L^1·M^1
	// T^-2·L^2·M^1
	// true
}

// ExampleVector_Scale shows exact rational scaling: a third of a
// dimension, tripled, is exactly the whole dimension.
func ExampleVector_Scale() {
	third, err := vector.New(vector.Frac(1, 3))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	whole, err := third.Scale(vector.Int(3))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(third)
	fmt.Println(whole)
	fmt.Println(whole.Equal(vector.Base(vector.Time)))
	// Output:
	// T^1/3
	// T^1
	// true
}
