package codec

import (
	"fmt"
	"math/big"

	"github.com/glyphsig/glyph/ring"
)

// EncodeKSparse serializes a k-sparse ternary polynomial (every coefficient
// in {-1, 0, +1}, exactly k of them nonzero) using the combinatorial number
// system: walking coefficients from index 0 upward, a nonzero at index i
// contributes C(n-i, k_count) to a running total, with k_count descending
// from k. A k-bit sign trailer (1 = +1, 0 = -1, in traversal order) is
// appended below the combinadic value.
func EncodeKSparse(p ring.Poly, k int, r *ring.Ring) ([]byte, error) {
	n := int(r.N)
	centered := r.Centered(p)

	total := new(big.Int)
	var signs uint64
	kCount := k
	weight := 0

	for i, c := range centered {
		if c < -1 || c > 1 {
			return nil, fmt.Errorf("codec: k-sparse coefficient %d not in {-1,0,1}", c)
		}
		if c == 0 {
			continue
		}
		weight++
		if kCount <= 0 {
			return nil, fmt.Errorf("codec: k-sparse polynomial has more than %d nonzero coefficients", k)
		}

		cIdx := n - i // 1-indexed position count, per the spec's combinadic traversal
		total.Add(total, binomial(cIdx, kCount))
		kCount--

		signs <<= 1
		if c == 1 {
			signs |= 1
		}
	}
	if weight != k {
		return nil, fmt.Errorf("codec: k-sparse polynomial has weight %d, want %d", weight, k)
	}

	total.Lsh(total, uint(k))
	total.Or(total, new(big.Int).SetUint64(signs))

	byteLen := kSparseByteLen(n, k)
	out := make([]byte, byteLen)
	total.FillBytes(out)
	return out, nil
}

// DecodeKSparse inverts EncodeKSparse. It reconstructs a degree-n ternary
// polynomial with exactly k nonzero coefficients, or returns an error if
// data has the wrong length or decodes to a Hamming weight other than k
// (spec §7: a malformed challenge is invalid input, never a panic).
func DecodeKSparse(data []byte, k int, r *ring.Ring) (ring.Poly, error) {
	n := int(r.N)

	expectedLen := kSparseByteLen(n, k)
	if len(data) != expectedLen {
		return ring.Poly{}, fmt.Errorf("codec: expected %d k-sparse bytes, got %d", expectedLen, len(data))
	}

	packed := new(big.Int).SetBytes(data)
	signMask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(k)), big.NewInt(1))
	signs := new(big.Int).And(packed, signMask)
	combinadic := new(big.Int).Rsh(packed, uint(k))

	coeffs := make([]int64, n)
	weight := 0

	for kCount := k; kCount >= 1; kCount-- {
		m, cVal, err := largestBinomialBound(n, kCount, combinadic)
		if err != nil {
			return ring.Poly{}, err
		}
		combinadic.Sub(combinadic, cVal)

		idx := n - m
		if idx < 0 || idx >= n {
			return ring.Poly{}, fmt.Errorf("codec: k-sparse decode produced out-of-range index %d", idx)
		}

		signBit := signs.Bit(kCount - 1)
		if coeffs[idx] == 0 {
			weight++
		}
		if signBit == 1 {
			coeffs[idx] = 1
		} else {
			coeffs[idx] = -1
		}
	}

	if weight != k {
		return ring.Poly{}, fmt.Errorf("codec: k-sparse decode produced weight %d, want %d", weight, k)
	}

	return r.FromCentered(coeffs), nil
}

// largestBinomialBound binary-searches the largest m in [0, n] such that
// C(m, kCount) <= target, returning m and C(m, kCount). This is the fixed
// form of the reference's decode step: the source subtracts a stale binomial
// value left over from the prior loop iteration rather than the just-chosen
// C(m, kCount); subtracting the just-chosen value is the only one that
// round-trips with EncodeKSparse.
func largestBinomialBound(n, kCount int, target *big.Int) (m int, c *big.Int, err error) {
	lo, hi := 0, n+1
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if binomial(mid, kCount).Cmp(target) <= 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	if binomial(lo, kCount).Cmp(target) > 0 {
		return 0, nil, fmt.Errorf("codec: k-sparse decode failed to locate combinadic digit")
	}
	return lo, binomial(lo, kCount), nil
}

// kSparseByteLen returns ceil((k + log2 C(n,k))/8), computed exactly as the
// byte length of C(n,k)*2^k - 1. EncodeKSparse counts positions from 1, so
// its packed values reach C(n+1,k)*2^k - 1; for n=1024, k=16 both need 17
// bytes.
func kSparseByteLen(n, k int) int {
	max := new(big.Int).Lsh(binomial(n, k), uint(k))
	max.Sub(max, big.NewInt(1))
	return (max.BitLen() + 7) / 8
}

// KSparseByteLen returns the wire length EncodeKSparse produces for a
// degree-n, weight-k challenge, without requiring a Poly value in hand.
func KSparseByteLen(n, k int) int {
	return kSparseByteLen(n, k)
}
