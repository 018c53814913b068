package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimens/vector"
)

// TestAdd_IdentityAndCommutativity verifies v + zero == v and a + b == b + a.
func TestAdd_IdentityAndCommutativity(t *testing.T) {
	a, err := vector.New(vector.Int(1), vector.Frac(1, 2), vector.Int(-3))
	require.NoError(t, err)
	b, err := vector.New(vector.Int(-1), vector.Frac(3, 2), vector.Int(4))
	require.NoError(t, err)

	assert.True(t, a.Add(vector.Zero()).Equal(a), "zero is the additive identity")
	assert.True(t, a.Add(b).Equal(b.Add(a)), "addition is commutative")
}

// TestAdd_Associativity verifies (a + b) + c == a + (b + c) with
// fractional components in play.
func TestAdd_Associativity(t *testing.T) {
	a, err := vector.New(vector.Frac(1, 3))
	require.NoError(t, err)
	b, err := vector.New(vector.Frac(1, 6))
	require.NoError(t, err)
	c, err := vector.New(vector.Frac(1, 2))
	require.NoError(t, err)

	assert.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))))
}

// TestSub_PerfectCancellation verifies v - v == zero and v + (-v) == zero,
// including fractional components.
func TestSub_PerfectCancellation(t *testing.T) {
	v, err := vector.New(
		vector.Frac(1, 3), vector.Frac(-7, 11), vector.Int(2),
		vector.Float(0.25), vector.Int(0), vector.Int(0),
		vector.Frac(5, 9), vector.Int(-1),
	)
	require.NoError(t, err)

	assert.True(t, v.Sub(v).Equal(vector.Zero()), "v - v must cancel exactly")
	assert.True(t, v.Add(v.Neg()).Equal(vector.Zero()), "v + (-v) must cancel exactly")
}

// TestSub_OperandOrder verifies a - b subtracts b's components from a's.
func TestSub_OperandOrder(t *testing.T) {
	a, err := vector.New(vector.Int(3))
	require.NoError(t, err)
	b, err := vector.New(vector.Int(1))
	require.NoError(t, err)

	want, err := vector.New(vector.Int(2))
	require.NoError(t, err)
	assert.True(t, a.Sub(b).Equal(want))

	wantNeg, err := vector.New(vector.Int(-2))
	require.NoError(t, err)
	assert.True(t, b.Sub(a).Equal(wantNeg))
}

// TestScale_Exactness verifies the load-bearing exactness property:
// for any integer n != 0, Frac(1,n) scaled by n is exactly 1.
func TestScale_Exactness(t *testing.T) {
	for _, n := range []int64{1, 2, 3, 7, 10, 97, -3, -1000003} {
		v, err := vector.New(vector.Frac(int64(1), n))
		require.NoError(t, err)

		got, err := v.Scale(vector.Int(n))
		require.NoError(t, err)

		want, err := vector.New(vector.Int(1))
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "1/%d * %d must be exactly 1", n, n)
	}
}

// TestScale_FloatScalarStaysExact verifies float scalars convert to
// rationals before the multiply: scaling 1/3 by 3.0 is still exactly 1.
func TestScale_FloatScalarStaysExact(t *testing.T) {
	v, err := vector.New(vector.Frac(1, 3))
	require.NoError(t, err)

	got, err := v.Scale(vector.Float(3.0))
	require.NoError(t, err)

	want, err := vector.New(vector.Int(1))
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
}

// TestScale_BothSpellings verifies v.Scale(k) and Scale(k, v) agree.
func TestScale_BothSpellings(t *testing.T) {
	v, err := vector.New(vector.Int(1), vector.Int(-2), vector.Int(0),
		vector.Int(0), vector.Int(0), vector.Int(0), vector.Int(3))
	require.NoError(t, err)

	left, err := vector.Scale(vector.Int(2), v)
	require.NoError(t, err)
	right, err := v.Scale(vector.Int(2))
	require.NoError(t, err)

	assert.True(t, left.Equal(right), "scalar on either side yields the same vector")

	want, err := vector.New(vector.Int(2), vector.Int(-4), vector.Int(0),
		vector.Int(0), vector.Int(0), vector.Int(0), vector.Int(6))
	require.NoError(t, err)
	assert.True(t, left.Equal(want))
}

// TestScale_ZeroAndErrors verifies zero scaling collapses to the zero
// vector and invalid scalars surface their errors.
func TestScale_ZeroAndErrors(t *testing.T) {
	v, err := vector.New(vector.Frac(22, 7), vector.Int(-5))
	require.NoError(t, err)

	got, err := v.Scale(vector.Int(0))
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "scaling by zero yields the zero vector")

	_, err = v.Scale(vector.Frac(1, 0))
	assert.ErrorIs(t, err, vector.ErrZeroDenominator)
}

// TestOps_OperandsUntouched verifies arithmetic never mutates an operand.
func TestOps_OperandsUntouched(t *testing.T) {
	v, err := vector.New(vector.Int(1), vector.Int(-2), vector.Int(0),
		vector.Int(0), vector.Int(0), vector.Int(0), vector.Int(3))
	require.NoError(t, err)
	before := v.String()

	o, err := vector.New(vector.Frac(5, 4))
	require.NoError(t, err)

	_ = v.Add(o)
	_ = v.Sub(o)
	_ = v.Neg()
	if _, err = v.Scale(vector.Int(2)); err != nil {
		t.Fatalf("Scale failed: %v", err)
	}

	assert.Equal(t, before, v.String(), "operand must be unchanged after arithmetic")
}

// TestDerived_Vectors spot-checks the ready-made vectors against hand
// construction.
func TestDerived_Vectors(t *testing.T) {
	force, err := vector.New(vector.Int(-2), vector.Int(1), vector.Int(1))
	require.NoError(t, err)
	assert.True(t, vector.Force().Equal(force))

	energy := force.Add(vector.Base(vector.Length))
	assert.True(t, vector.Energy().Equal(energy))

	charge, err := vector.New(vector.Int(1), vector.Int(0), vector.Int(0), vector.Int(1))
	require.NoError(t, err)
	assert.True(t, vector.Charge().Equal(charge))

	stat, err := vector.New(vector.Int(-1), vector.Frac(3, 2), vector.Frac(1, 2))
	require.NoError(t, err)
	assert.True(t, vector.StatCharge().Equal(stat))

	assert.True(t, vector.Dimensionless().IsZero())
	assert.Panics(t, func() { vector.Base(vector.NumDimensions) },
		"Base with an out-of-range axis is a programmer error")
}
