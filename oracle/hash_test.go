package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glyphsig/glyph/oracle"
	"github.com/glyphsig/glyph/ring"
)

func testRing(t *testing.T) *ring.Ring {
	r, err := ring.NewRing(1024, 59393)
	require.NoError(t, err)
	return r
}

func TestChallengeDeterministic(t *testing.T) {
	r := testRing(t)
	w := r.FromUnsigned(make([]uint64, r.N))
	m := []byte("Hello, World!")

	c1, err := oracle.Challenge(r, w, m, 16)
	require.NoError(t, err)
	c2, err := oracle.Challenge(r, w, m, 16)
	require.NoError(t, err)

	require.True(t, r.Equal(c1, c2))
}

func TestChallengeHasExactWeightAndTernaryCoeffs(t *testing.T) {
	r := testRing(t)
	w := r.FromUnsigned(make([]uint64, r.N))
	m := []byte("some message")

	c, err := oracle.Challenge(r, w, m, 16)
	require.NoError(t, err)

	centered := r.Centered(c)
	weight := 0
	for _, v := range centered {
		require.Contains(t, []int64{-1, 0, 1}, v)
		if v != 0 {
			weight++
		}
	}
	require.Equal(t, 16, weight)
}

func TestChallengeVariesWithMessage(t *testing.T) {
	r := testRing(t)
	w := r.FromUnsigned(make([]uint64, r.N))

	c1, err := oracle.Challenge(r, w, []byte("message a"), 16)
	require.NoError(t, err)
	c2, err := oracle.Challenge(r, w, []byte("message b"), 16)
	require.NoError(t, err)

	require.False(t, r.Equal(c1, c2))
}

func TestChallengeVariesWithCommitment(t *testing.T) {
	r := testRing(t)
	w1 := r.FromUnsigned(make([]uint64, r.N))
	coeffs := make([]uint64, r.N)
	coeffs[0] = 1
	w2 := r.FromUnsigned(coeffs)

	m := []byte("fixed message")
	c1, err := oracle.Challenge(r, w1, m, 16)
	require.NoError(t, err)
	c2, err := oracle.Challenge(r, w2, m, 16)
	require.NoError(t, err)

	require.False(t, r.Equal(c1, c2))
}
