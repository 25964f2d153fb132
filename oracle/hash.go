// Package oracle implements the hash-to-sparse random oracle H: it binds a
// commitment ring element and a message to a k-sparse ternary challenge
// polynomial, modelled as a random oracle via a SHAKE256 extendable-output
// function (golang.org/x/crypto/sha3, used here for its XOF rather than
// blake2b's fixed-output MAC).
package oracle

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"

	"golang.org/x/crypto/sha3"

	"github.com/glyphsig/glyph/ring"
)

// maxPositionAttemptsPerBit bounds how many candidate positions the oracle
// will draw from the XOF per nonzero coefficient before giving up. The
// rejection probability per draw is at most k/n (duplicates) plus a small
// out-of-range slice, so this is an extravagantly generous cap; exhausting
// it indicates a parameter misconfiguration (spec §9), never a property of
// a correctly chosen (n, k).
const maxPositionAttemptsPerBit = 4096

// Challenge computes H(w, m): a ternary polynomial in r's ring with exactly
// k nonzero coefficients, each +1 or -1, deterministically derived from w
// and m. Identical (w, m, k) always yields an identical result.
func Challenge(r *ring.Ring, w ring.Poly, m []byte, k int) (ring.Poly, error) {
	buf := serializeForHash(r, w, m)

	xof := sha3.NewShake256()
	_, _ = xof.Write(buf)

	reader := &bitReader{xof: xof}

	n := int(r.N)
	posBits := bits.Len(uint(n - 1))

	coeffs := make([]int64, n)
	seen := make([]bool, n)

	for count := 0; count < k; {
		attempts := 0
		for {
			attempts++
			if attempts > maxPositionAttemptsPerBit {
				return ring.Poly{}, fmt.Errorf("oracle: exhausted XOF position budget selecting challenge coefficient %d", count)
			}

			pos, err := reader.readBits(posBits)
			if err != nil {
				return ring.Poly{}, err
			}
			if pos >= uint64(n) || seen[pos] {
				continue
			}

			signBit, err := reader.readBits(1)
			if err != nil {
				return ring.Poly{}, err
			}

			seen[pos] = true
			if signBit == 1 {
				coeffs[pos] = 1
			} else {
				coeffs[pos] = -1
			}
			count++
			break
		}
	}

	return r.FromCentered(coeffs), nil
}

// serializeForHash encodes w little-endian, 2 bytes per coefficient (the low
// 16 bits of its unsigned lift, in coefficient order), followed by the raw
// message bytes — exactly the reference's prepare_poly_for_hash layout.
func serializeForHash(r *ring.Ring, w ring.Poly, m []byte) []byte {
	buf := make([]byte, 2*w.N()+len(m))
	for i, c := range w.Coeffs {
		binary.LittleEndian.PutUint16(buf[2*i:2*i+2], uint16(c))
	}
	copy(buf[2*w.N():], m)
	return buf
}

// bitReader pulls bits out of a XOF stream, most-significant bit of each
// byte first, replenishing its buffer as needed. The amount of output
// consumed from the XOF is variable (spec §9's note that the challenge
// sampler "consumes a variable amount of hash output"); Challenge bounds it.
type bitReader struct {
	xof      io.Reader
	buf      [32]byte
	bitPos   int // next unread bit, 0 = MSB of buf[0]
	validLen int // valid bytes currently in buf, in bits
}

func (b *bitReader) readBits(n int) (uint64, error) {
	var v uint64
	for i := 0; i < n; i++ {
		if b.bitPos >= b.validLen {
			if err := b.refill(); err != nil {
				return 0, err
			}
		}
		byteIdx := b.bitPos / 8
		bitIdx := 7 - b.bitPos%8
		bit := (b.buf[byteIdx] >> uint(bitIdx)) & 1
		v = v<<1 | uint64(bit)
		b.bitPos++
	}
	return v, nil
}

func (b *bitReader) refill() error {
	n, err := b.xof.Read(b.buf[:])
	if err != nil {
		return fmt.Errorf("oracle: reading XOF output: %w", err)
	}
	b.bitPos = 0
	b.validLen = n * 8
	return nil
}
