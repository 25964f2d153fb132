package glyph

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/glyphsig/glyph/codec"
	"github.com/glyphsig/glyph/ring"
	"github.com/glyphsig/glyph/sampling"
)

// Parameters is a fixed, read-only scheme instance: ring dimension n, prime
// modulus q, the public constant ring element a, the y-sample bound B, the
// tight response bound Bs = B - k, and the challenge Hamming weight k. A
// Parameters value is immutable after construction and safe for concurrent
// use by KeyGen, Sign and Verify, mirroring core/rlwe.Parameters: built once
// via NewParameters, then shared read-only.
type Parameters struct {
	ring *ring.Ring
	a    ring.Poly

	bound         int64
	tightBound    int64
	hammingWeight int
}

// N returns the ring degree.
func (p Parameters) N() int { return int(p.ring.N) }

// Q returns the prime modulus.
func (p Parameters) Q() uint64 { return p.ring.Q }

// Bound returns B, the coefficient bound used when sampling y1, y2.
func (p Parameters) Bound() int64 { return p.bound }

// TightBound returns Bs = B - k, the admission bound checked on z1, z2.
func (p Parameters) TightBound() int64 { return p.tightBound }

// HammingWeight returns k, the number of nonzero coefficients of a challenge.
func (p Parameters) HammingWeight() int { return p.hammingWeight }

// Ring returns the R_q descriptor backing this parameter set.
func (p Parameters) Ring() *ring.Ring { return p.ring }

// A returns the scheme's public constant ring element.
func (p Parameters) A() ring.Poly { return p.a }

// PublicKeyByteLen returns the wire length of a packed public key.
func (p Parameters) PublicKeyByteLen() int {
	return codec.PackedPolyByteLen(p.N(), p.Q()/2)
}

// SignatureByteLen returns the wire length of a packed signature.
func (p Parameters) SignatureByteLen() int {
	zLen := codec.PackedPolyByteLen(p.N(), uint64(p.tightBound))
	return 2*zLen + codec.KSparseByteLen(p.N(), p.hammingWeight)
}

// NewParameters validates and constructs a new scheme instance. n must be a
// power of two, q a prime strictly greater than 2*bound+1 (so the general
// packing codec's coefficient range never wraps the modulus), bound > 0 and
// hammingWeight in (0, bound) so that the tight bound Bs = bound -
// hammingWeight stays positive.
func NewParameters(n int, q uint64, bound int64, hammingWeight int) (Parameters, error) {
	r, err := ring.NewRing(uint64(n), q)
	if err != nil {
		return Parameters{}, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	if !big.NewInt(0).SetUint64(q).ProbablyPrime(32) {
		return Parameters{}, fmt.Errorf("%w: modulus %d is not prime", ErrInvalidParameters, q)
	}
	if bound <= 0 {
		return Parameters{}, fmt.Errorf("%w: bound must be positive", ErrInvalidParameters)
	}
	if hammingWeight <= 0 || hammingWeight >= int(bound) {
		return Parameters{}, fmt.Errorf("%w: hamming weight must be in (0, bound)", ErrInvalidParameters)
	}
	if uint64(2*bound+1) >= q {
		return Parameters{}, fmt.Errorf("%w: 2*bound+1 must be smaller than q", ErrInvalidParameters)
	}

	a, err := deriveA(r)
	if err != nil {
		return Parameters{}, err
	}

	return Parameters{
		ring:          r,
		a:             a,
		bound:         bound,
		tightBound:    bound - int64(hammingWeight),
		hammingWeight: hammingWeight,
	}, nil
}

// deriveA deterministically derives the scheme's public constant a from
// (n, q) alone, the way lattigo's CRPGenerator expands a fixed key into a
// common reference polynomial: every party that constructs Parameters with
// the same (n, q) gets byte-identical a, with no handshake and no secret
// material involved.
func deriveA(r *ring.Ring) (ring.Poly, error) {
	label := sha3.Sum256(append([]byte("glyph/public-constant-a/"), encodeNQ(r)...))
	var key [16]byte
	copy(key[:], label[:16])

	prng, err := sampling.NewCTRPRNG(key)
	if err != nil {
		return ring.Poly{}, fmt.Errorf("glyph: deriving public constant: %w", err)
	}
	return sampling.UniformSampler{}.SamplePoly(prng, r), nil
}

func encodeNQ(r *ring.Ring) []byte {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf[:8], r.N)
	binary.BigEndian.PutUint64(buf[8:], r.Q)
	return buf
}

// DefaultParameters is the scheme's concrete parameter set (n=1024,
// q=59393, B=16383, k=16), matching the worked scenarios of the scheme's
// testable properties.
var DefaultParameters = mustDefaultParameters()

func mustDefaultParameters() Parameters {
	p, err := NewParameters(1024, 59393, 16383, 16)
	if err != nil {
		// Sanity check: the scheme's own concrete parameter set must be
		// valid. This should never happen.
		panic(err)
	}
	return p
}
