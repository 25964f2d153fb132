package sampling_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glyphsig/glyph/ring"
	"github.com/glyphsig/glyph/sampling"
)

func TestCTRPRNGDeterministic(t *testing.T) {
	key := [16]byte{1, 2, 3, 4}

	a, err := sampling.NewCTRPRNG(key)
	require.NoError(t, err)
	b, err := sampling.NewCTRPRNG(key)
	require.NoError(t, err)

	bufA := make([]byte, 256)
	bufB := make([]byte, 256)
	_, _ = a.Read(bufA)
	_, _ = b.Read(bufB)

	require.True(t, bytes.Equal(bufA, bufB))
}

func TestCTRPRNGDifferentKeysDiverge(t *testing.T) {
	a, err := sampling.NewCTRPRNG([16]byte{1})
	require.NoError(t, err)
	b, err := sampling.NewCTRPRNG([16]byte{2})
	require.NoError(t, err)

	bufA := make([]byte, 64)
	bufB := make([]byte, 64)
	_, _ = a.Read(bufA)
	_, _ = b.Read(bufB)

	require.False(t, bytes.Equal(bufA, bufB))
}

func TestBoundedSamplerRange(t *testing.T) {
	prng, err := sampling.NewCTRPRNG([16]byte{9, 9, 9})
	require.NoError(t, err)

	s := sampling.BoundedSampler{Bound: 5}
	coeffs := s.Sample(prng, 10000)
	for _, c := range coeffs {
		require.GreaterOrEqual(t, c, int64(-5))
		require.LessOrEqual(t, c, int64(5))
	}
}

func TestBoundedSamplerDisallowsZero(t *testing.T) {
	prng, err := sampling.NewCTRPRNG([16]byte{7})
	require.NoError(t, err)

	s := sampling.BoundedSampler{Bound: 1, Disallow: func(v int64) bool { return v == 0 }}
	coeffs := s.Sample(prng, 1000)
	for _, c := range coeffs {
		require.NotZero(t, c)
	}
}

func TestUniformSamplerInRing(t *testing.T) {
	r, err := ring.NewRing(1024, 59393)
	require.NoError(t, err)
	prng, err := sampling.NewCTRPRNG([16]byte{3, 1, 4})
	require.NoError(t, err)

	p := sampling.UniformSampler{}.SamplePoly(prng, r)
	for _, c := range p.Coeffs {
		require.Less(t, c, r.Q)
	}
}
