package codec

import (
	"fmt"
	"math/big"

	"github.com/glyphsig/glyph/ring"
)

// PackPoly serializes p into the minimal-length base-r big-endian byte
// string, where r = 2b+1 and every centered coefficient of p must lie in
// [-b, b]. Coefficients are treated as base-r digits, most-significant digit
// first (index 0): N = sum_i (c_i + b) * r^(n-1-i). This is GLYPH's true
// base-r packing, not AGLYPH's bit-shift variant (which wastes space when r
// is not a power of two) — the core contract specifies base-r packing only.
func PackPoly(b uint64, p ring.Poly, r *ring.Ring) ([]byte, error) {
	centered := r.Centered(p)
	base := new(big.Int).SetUint64(2*b + 1)

	n := new(big.Int)
	bi := new(big.Int).SetUint64(b)
	for _, c := range centered {
		if c < -int64(b) || c > int64(b) {
			return nil, fmt.Errorf("codec: coefficient %d outside bound [-%d, %d]", c, b, b)
		}
		n.Mul(n, base)
		n.Add(n, new(big.Int).Add(big.NewInt(c), bi))
	}

	byteLen := packedByteLen(len(centered), base)
	out := make([]byte, byteLen)
	n.FillBytes(out) // left-pads with zero bytes; panics only if out is too small.
	return out, nil
}

// UnpackPoly inverts PackPoly: given bound b and an expected degree matching
// r.N, it decodes data back into a Poly. An error is returned (never a
// panic) if data has the wrong length or decodes to a value that does not
// fit in r.N base-r digits — both are "invalid input" per the scheme's
// error model and must surface as a hard reject, not a crash.
func UnpackPoly(b uint64, data []byte, r *ring.Ring) (ring.Poly, error) {
	n := int(r.N)
	base := new(big.Int).SetUint64(2*b + 1)

	expectedLen := packedByteLen(n, base)
	if len(data) != expectedLen {
		return ring.Poly{}, fmt.Errorf("codec: expected %d packed bytes, got %d", expectedLen, len(data))
	}

	remaining := new(big.Int).SetBytes(data)
	coeffs := make([]int64, n)
	bi := int64(b)
	q, rem := new(big.Int), new(big.Int)
	for i := n - 1; i >= 0; i-- {
		q.DivMod(remaining, base, rem)
		coeffs[i] = rem.Int64() - bi
		remaining, q = q, remaining
	}
	if remaining.Sign() != 0 {
		return ring.Poly{}, fmt.Errorf("codec: packed value exceeds %d base-r digits", n)
	}

	return r.FromCentered(coeffs), nil
}

// packedByteLen returns the minimal number of bytes needed to hold any value
// in [0, base^n), computed exactly via big.Int bit length rather than a
// floating-point log2 (which can round incorrectly for non-power-of-two
// bases): ceil(n*log2(base)/8) = ceil(bitlen(base^n - 1)/8).
func packedByteLen(n int, base *big.Int) int {
	max := new(big.Int).Exp(base, big.NewInt(int64(n)), nil)
	max.Sub(max, big.NewInt(1))
	return (max.BitLen() + 7) / 8
}

// PackedPolyByteLen returns the wire length PackPoly produces for a degree-n
// polynomial bounded by b, without requiring a Poly value in hand.
func PackedPolyByteLen(n int, b uint64) int {
	return packedByteLen(n, new(big.Int).SetUint64(2*b+1))
}
