package ring_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glyphsig/glyph/ring"
)

func testRing(t *testing.T) *ring.Ring {
	r, err := ring.NewRing(1024, 59393)
	require.NoError(t, err)
	return r
}

func TestNewRingRejectsInvalidParameters(t *testing.T) {
	_, err := ring.NewRing(1000, 59393) // not a power of two
	require.Error(t, err)

	_, err = ring.NewRing(1024, 4) // even modulus
	require.Error(t, err)
}

func TestCenteredLift(t *testing.T) {
	r := testRing(t)
	p := r.FromUnsigned(append([]uint64{0, 1, r.Q / 2, r.Q/2 + 1, r.Q - 1}, make([]uint64, r.N-5)...))
	centered := r.Centered(p)
	require.Equal(t, []int64{0, 1, int64(r.Q / 2), int64(r.Q/2+1) - int64(r.Q), -1}, centered[:5])
}

func TestInfinityNorm(t *testing.T) {
	r := testRing(t)
	coeffs := make([]int64, r.N)
	coeffs[0] = 5
	coeffs[1] = -7
	p := r.FromCentered(coeffs)
	require.EqualValues(t, 7, r.InfinityNorm(p))
}

func TestAddSubRoundTrip(t *testing.T) {
	r := testRing(t)
	rnd := rand.New(rand.NewSource(1))
	a := randomPoly(r, rnd)
	b := randomPoly(r, rnd)

	sum := r.Add(a, b)
	back := r.Sub(sum, b)
	require.True(t, r.Equal(a, back))
}

func TestMulCoeffsNegacyclicWrap(t *testing.T) {
	r := testRing(t)
	// X^(n-1) * X = X^n = -1 (negacyclic reduction).
	xnm1 := r.NewPoly()
	xnm1.Coeffs[r.N-1] = 1
	x := r.NewPoly()
	x.Coeffs[1] = 1

	got := r.MulCoeffs(xnm1, x)
	want := r.FromCentered(make([]int64, r.N))
	want.Coeffs[0] = r.Q - 1 // -1 mod q
	require.True(t, r.Equal(got, want))
}

func TestMulCoeffsCommutative(t *testing.T) {
	r := testRing(t)
	rnd := rand.New(rand.NewSource(2))
	a := randomPoly(r, rnd)
	b := randomPoly(r, rnd)
	require.True(t, r.Equal(r.MulCoeffs(a, b), r.MulCoeffs(b, a)))
}

func randomPoly(r *ring.Ring, rnd *rand.Rand) ring.Poly {
	coeffs := make([]uint64, r.N)
	for i := range coeffs {
		coeffs[i] = uint64(rnd.Int63n(int64(r.Q)))
	}
	return r.FromUnsigned(coeffs)
}
