package glyph

import (
	"fmt"

	"github.com/glyphsig/glyph/codec"
	"github.com/glyphsig/glyph/sampling"
)

// KeyGenerator produces key pairs for a fixed Parameters instance, mirroring
// lattigo's core/rlwe.KeyGenerator: a small, stateless wrapper around the
// parameter set that exposes the GenKeyPair operation.
type KeyGenerator struct {
	params Parameters
}

// NewKeyGenerator returns a KeyGenerator bound to params.
func NewKeyGenerator(params Parameters) KeyGenerator {
	return KeyGenerator{params: params}
}

// GenKeyPair samples a fresh (s, e) ternary key pair, computes t = a*s + e,
// and returns the packed public-key bytes alongside the secret key.
func (kg KeyGenerator) GenKeyPair() (pkBytes []byte, sk *SecretKey, err error) {
	key, err := sampling.RandomKey()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	prng, err := sampling.NewCTRPRNG(key)
	if err != nil {
		return nil, nil, err
	}
	defer zeroKey(&key)

	r := kg.params.Ring()
	ternary := sampling.BoundedSampler{Bound: 1}

	s := ternary.SamplePoly(prng, r)
	e := ternary.SamplePoly(prng, r)

	t := r.Add(r.MulCoeffs(kg.params.A(), s), e)

	pkBytes, err = codec.PackPoly(kg.params.Q()/2, t, r)
	if err != nil {
		// Sanity check: the centered lift of every coefficient of t lies
		// within [-q/2, q/2], the packing bound, so this should never
		// happen.
		return nil, nil, fmt.Errorf("glyph: packing public key: %w", err)
	}

	return pkBytes, &SecretKey{S: s, E: e}, nil
}

func zeroKey(key *[16]byte) {
	for i := range key {
		key[i] = 0
	}
}
