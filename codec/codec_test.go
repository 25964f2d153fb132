package codec_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glyphsig/glyph/codec"
	"github.com/glyphsig/glyph/ring"
)

func testRing(t *testing.T) *ring.Ring {
	r, err := ring.NewRing(1024, 59393)
	require.NoError(t, err)
	return r
}

func TestPackPolyLength(t *testing.T) {
	r := testRing(t)
	p := r.NewPoly()

	data, err := codec.PackPoly(r.Q/2, p, r)
	require.NoError(t, err)
	require.Len(t, data, 2030) // ceil(1024*log2(59393)/8), computed exactly, not the spec's rounded "2048"
}

func TestPackUnpackPolyRoundTrip(t *testing.T) {
	r := testRing(t)
	rnd := rand.New(rand.NewSource(42))

	const bound = int64(16367)
	for trial := 0; trial < 200; trial++ {
		coeffs := make([]int64, r.N)
		for i := range coeffs {
			coeffs[i] = rnd.Int63n(2*bound+1) - bound
		}
		p := r.FromCentered(coeffs)

		data, err := codec.PackPoly(uint64(bound), p, r)
		require.NoError(t, err)

		back, err := codec.UnpackPoly(uint64(bound), data, r)
		require.NoError(t, err)
		require.True(t, r.Equal(p, back))
	}
}

func TestUnpackPolyRejectsWrongLength(t *testing.T) {
	r := testRing(t)
	_, err := codec.UnpackPoly(r.Q/2, make([]byte, 1), r)
	require.Error(t, err)
}

func TestEncodeDecodeKSparseRoundTrip(t *testing.T) {
	r := testRing(t)
	rnd := rand.New(rand.NewSource(7))
	const k = 16

	for trial := 0; trial < 100; trial++ {
		coeffs := make([]int64, r.N)
		positions := rnd.Perm(int(r.N))[:k]
		for _, pos := range positions {
			if rnd.Intn(2) == 0 {
				coeffs[pos] = -1
			} else {
				coeffs[pos] = 1
			}
		}
		p := r.FromCentered(coeffs)

		data, err := codec.EncodeKSparse(p, k, r)
		require.NoError(t, err)
		require.Len(t, data, 17) // ceil((16 + log2 C(1024,16))/8)

		back, err := codec.DecodeKSparse(data, k, r)
		require.NoError(t, err)
		require.True(t, r.Equal(p, back))
	}
}

func TestDecodeKSparseRejectsWrongLength(t *testing.T) {
	r := testRing(t)
	_, err := codec.DecodeKSparse(make([]byte, 1), 16, r)
	require.Error(t, err)
}

func TestEncodeKSparseRejectsWrongWeight(t *testing.T) {
	r := testRing(t)
	coeffs := make([]int64, r.N)
	coeffs[0] = 1 // only one nonzero coefficient, k=16 expected
	p := r.FromCentered(coeffs)

	_, err := codec.EncodeKSparse(p, 16, r)
	require.Error(t, err)
}
