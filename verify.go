package glyph

import (
	"github.com/glyphsig/glyph/codec"
	"github.com/glyphsig/glyph/oracle"
)

// Verify reports whether signature is a valid signature over m under the
// public key packed in pkBytes, for the given scheme instance. Every
// failure mode — malformed bytes, an over-bound response, a challenge that
// fails to rehash — collapses to false; Verify never returns an error or a
// more granular reason, to avoid signal leakage across the public/verifier
// boundary (spec §7).
func Verify(params Parameters, m, signature, pkBytes []byte) bool {
	r := params.Ring()

	zLen := codec.PackedPolyByteLen(params.N(), uint64(params.TightBound()))
	cLen := codec.KSparseByteLen(params.N(), params.HammingWeight())
	if len(signature) != 2*zLen+cLen {
		return false
	}

	z1Bytes := signature[:zLen]
	z2Bytes := signature[zLen : 2*zLen]
	cBytes := signature[2*zLen:]

	tight := uint64(params.TightBound())

	z1, err := codec.UnpackPoly(tight, z1Bytes, r)
	if err != nil {
		return false
	}
	z2, err := codec.UnpackPoly(tight, z2Bytes, r)
	if err != nil {
		return false
	}
	c, err := codec.DecodeKSparse(cBytes, params.HammingWeight(), r)
	if err != nil {
		return false
	}

	if r.InfinityNorm(z1) > tight || r.InfinityNorm(z2) > tight {
		return false
	}

	if len(pkBytes) != codec.PackedPolyByteLen(params.N(), params.Q()/2) {
		return false
	}
	t, err := codec.UnpackPoly(params.Q()/2, pkBytes, r)
	if err != nil {
		return false
	}

	// w' = a*z1 + z2 - t*c
	wPrime := r.Sub(r.Add(r.MulCoeffs(params.A(), z1), z2), r.MulCoeffs(t, c))

	cPrime, err := oracle.Challenge(r, wPrime, m, params.HammingWeight())
	if err != nil {
		return false
	}

	return r.Equal(c, cPrime)
}
