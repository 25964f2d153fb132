package glyph

import (
	"fmt"

	"github.com/glyphsig/glyph/codec"
	"github.com/glyphsig/glyph/oracle"
	"github.com/glyphsig/glyph/ring"
	"github.com/glyphsig/glyph/sampling"
)

// maxSignIterations bounds the rejection-sampling loop in Sign. Reaching it
// means the (bound, hammingWeight) pair does not give the expected O(1)
// acceptance rate — a parameter misconfiguration, not transient bad luck
// (spec §9: "implementers should not silently loop forever").
const maxSignIterations = 1 << 20

// Sign produces a signature over m under sk, using params as the scheme
// instance. Each call draws a fresh 128-bit AES key from the operating
// system's entropy source (fatal on failure, per the scheme's error model)
// and runs the Fiat-Shamir commit-challenge-response loop with rejection
// sampling until the responses satisfy the tight norm bound. Two calls on
// the same (sk, m) produce different signatures with overwhelming
// probability, since each attempt draws an independent key.
func Sign(params Parameters, sk *SecretKey, m []byte) ([]byte, error) {
	r := params.Ring()
	y1y2Sampler := sampling.BoundedSampler{Bound: params.Bound()}

	for attempt := 0; attempt < maxSignIterations; attempt++ {
		key, err := sampling.RandomKey()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEntropy, err)
		}
		sig, ok, err := signAttempt(params, r, sk, m, key, y1y2Sampler)
		zeroKey(&key)
		if err != nil {
			return nil, err
		}
		if ok {
			return sig, nil
		}
	}
	return nil, fmt.Errorf("%w: after %d attempts", ErrIterationsExceeded, maxSignIterations)
}

// signAttempt runs a single iteration of the rejection-sampling loop. It
// returns ok=false (with no error) when the responses exceed the tight
// bound and the caller should retry with a fresh key.
func signAttempt(params Parameters, r *ring.Ring, sk *SecretKey, m []byte, key [16]byte, ySampler sampling.BoundedSampler) (sig []byte, ok bool, err error) {
	prng, err := sampling.NewCTRPRNG(key)
	if err != nil {
		return nil, false, err
	}

	y1 := ySampler.SamplePoly(prng, r)
	y2 := ySampler.SamplePoly(prng, r)
	defer zeroPoly(y1)
	defer zeroPoly(y2)

	w := r.Add(r.MulCoeffs(params.A(), y1), y2)

	c, err := oracle.Challenge(r, w, m, params.HammingWeight())
	if err != nil {
		return nil, false, fmt.Errorf("glyph: computing challenge: %w", err)
	}

	z1 := r.Add(r.MulCoeffs(sk.S, c), y1)
	z2 := r.Add(r.MulCoeffs(sk.E, c), y2)

	tight := uint64(params.TightBound())
	if r.InfinityNorm(z1) > tight || r.InfinityNorm(z2) > tight {
		return nil, false, nil
	}

	sig, err = packSignature(params, r, z1, z2, c)
	if err != nil {
		return nil, false, err
	}
	return sig, true, nil
}

func packSignature(params Parameters, r *ring.Ring, z1, z2, c ring.Poly) ([]byte, error) {
	b := uint64(params.TightBound())

	z1Bytes, err := codec.PackPoly(b, z1, r)
	if err != nil {
		return nil, fmt.Errorf("glyph: packing z1: %w", err)
	}
	z2Bytes, err := codec.PackPoly(b, z2, r)
	if err != nil {
		return nil, fmt.Errorf("glyph: packing z2: %w", err)
	}
	cBytes, err := codec.EncodeKSparse(c, params.HammingWeight(), r)
	if err != nil {
		return nil, fmt.Errorf("glyph: encoding challenge: %w", err)
	}

	out := make([]byte, 0, len(z1Bytes)+len(z2Bytes)+len(cBytes))
	out = append(out, z1Bytes...)
	out = append(out, z2Bytes...)
	out = append(out, cBytes...)
	return out, nil
}

func zeroPoly(p ring.Poly) {
	for i := range p.Coeffs {
		p.Coeffs[i] = 0
	}
}
