// Package exponent: multiplication and division of Exponents.
//
// Same-base combination stays symbolic (powers add or subtract);
// cross-base combination degrades to a plain float64. The Magnitude
// result type carries that asymmetry explicitly.
package exponent

// Magnitude is the tagged result of Mul or Div: either an exact Exponent
// (same-base combination) or a plain evaluated float64 (cross-base).
type Magnitude struct {
	exp   Exponent
	exact bool
	value float64
}

// exact wraps a same-base result.
func exactMagnitude(e Exponent) Magnitude {
	return Magnitude{exp: e, exact: true, value: e.Value()}
}

// inexact wraps a cross-base numeric result.
func inexactMagnitude(v float64) Magnitude {
	return Magnitude{value: v}
}

// Exact returns the symbolic Exponent and true when the combination
// stayed within one base; the zero Exponent and false otherwise.
func (m Magnitude) Exact() (Exponent, bool) { return m.exp, m.exact }

// IsExact reports whether the combination stayed within one base.
func (m Magnitude) IsExact() bool { return m.exact }

// Float returns the evaluated numeric value of the result, exact or not.
func (m Magnitude) Float() float64 { return m.value }

// Mul combines e·o: same base yields Exponent(base, e.power + o.power);
// different bases yield the plain product of the evaluated values.
func (e Exponent) Mul(o Exponent) Magnitude {
	if e.base == o.base {
		return exactMagnitude(Exponent{base: e.base, power: e.power + o.power})
	}

	return inexactMagnitude(e.Value() * o.Value())
}

// Div combines e/o: same base yields Exponent(base, e.power - o.power);
// different bases yield the plain ratio of the evaluated values.
func (e Exponent) Div(o Exponent) Magnitude {
	if e.base == o.base {
		return exactMagnitude(Exponent{base: e.base, power: e.power - o.power})
	}

	return inexactMagnitude(e.Value() / o.Value())
}
