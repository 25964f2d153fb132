package sampling

import (
	"math/bits"

	"github.com/glyphsig/glyph/ring"
)

// BoundedSampler draws ring-element coefficients uniformly from the centered
// range [-Bound, +Bound] by rejection sampling against a PRNG stream, the
// contract spec'd for both key-sampling (Bound=1, ternary) and the
// per-signature y1, y2 (Bound=B).
type BoundedSampler struct {
	Bound int64

	// Disallow optionally excludes specific centered values from the
	// output range (e.g. to exclude zero). A nil Disallow permits every
	// value in [-Bound, Bound], which is what key generation uses.
	Disallow func(int64) bool
}

// Sample draws n coefficients in the centered range [-Bound, Bound] from
// prng, rejecting draws that fall outside the range or are excluded by
// Disallow.
func (s BoundedSampler) Sample(prng PRNG, n int) []int64 {
	width := uint64(2*s.Bound + 1)
	maskBits := bits.Len64(width - 1)
	mask := uint64(1)<<uint(maskBits) - 1

	out := make([]int64, n)
	for i := 0; i < n; i++ {
		for {
			draw := nextWord(prng) & mask
			if draw >= width {
				continue
			}
			v := int64(draw) - s.Bound
			if s.Disallow != nil && s.Disallow(v) {
				continue
			}
			out[i] = v
			break
		}
	}
	return out
}

// SamplePoly draws a bounded polynomial directly into r's ring.
func (s BoundedSampler) SamplePoly(prng PRNG, r *ring.Ring) ring.Poly {
	return r.FromCentered(s.Sample(prng, int(r.N)))
}

// UniformSampler draws ring-element coefficients uniformly over the full
// [0, q) range, used to derive the scheme's public constant `a` (see
// glyph.NewParameters) from a deterministic, keyed PRNG — the same
// common-reference-polynomial idiom as lattigo's CRPGenerator.
type UniformSampler struct{}

// SamplePoly draws a uniform polynomial in r's ring.
func (UniformSampler) SamplePoly(prng PRNG, r *ring.Ring) ring.Poly {
	maskBits := bits.Len64(r.Q - 1)
	mask := uint64(1)<<uint(maskBits) - 1

	coeffs := make([]uint64, r.N)
	for i := range coeffs {
		for {
			draw := nextWord(prng) & mask
			if draw < r.Q {
				coeffs[i] = draw
				break
			}
		}
	}
	return r.FromUnsigned(coeffs)
}
