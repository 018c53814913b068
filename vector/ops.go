// Package vector: arithmetic over Vectors.
//
// Addition models multiplying the underlying quantities (exponents add),
// subtraction models dividing them. All operations are exact and return
// new Vectors; operands are never mutated.
package vector

// Add returns the component-wise sum v + o.
// Commutative, associative; Zero() is the identity.
func (v Vector) Add(o Vector) Vector {
	var out Vector
	for i := range v.exps {
		out.exps[i].Add(&v.exps[i], &o.exps[i])
	}

	return out
}

// Sub returns the component-wise difference v - o.
// Sub(v, v) is exactly Zero(), fractional components included.
func (v Vector) Sub(o Vector) Vector {
	var out Vector
	for i := range v.exps {
		out.exps[i].Sub(&v.exps[i], &o.exps[i])
	}

	return out
}

// Neg returns the component-wise additive inverse, so v.Add(v.Neg())
// is exactly Zero().
func (v Vector) Neg() Vector {
	var out Vector
	for i := range v.exps {
		out.exps[i].Neg(&v.exps[i])
	}

	return out
}

// Scale returns v with every component multiplied by k, exactly: the
// scalar is converted to a rational before the multiply, never after,
// so Frac(1,3) scaled by Int(3) is exactly Int(1). Scaling by zero
// yields Zero(). An invalid Scalar surfaces its deferred error.
func (v Vector) Scale(k Scalar) (Vector, error) {
	if k.err != nil {
		return Vector{}, k.err
	}

	var out Vector
	if k.rat == nil {
		return out, nil // zero Scalar
	}
	for i := range v.exps {
		out.exps[i].Mul(&v.exps[i], k.rat)
	}

	return out, nil
}

// Scale is the scalar-on-the-left spelling: Scale(k, v) == v.Scale(k).
func Scale(k Scalar, v Vector) (Vector, error) { return v.Scale(k) }
