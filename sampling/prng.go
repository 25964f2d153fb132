// Package sampling provides the deterministic randomness source and the
// coefficient samplers used to draw bounded and sparse ring elements for the
// GLYPH/AGLYPH signature scheme.
//
// The PRNG contract mirrors lattigo's utils/sampling.PRNG: construct once
// from a key, then draw an unbounded, reproducible stream of bytes from it.
// Here the stream is produced by AES in CTR mode, per the scheme's design
// (spec: "encrypts successive 16-byte big-endian counters with AES-ECB and
// takes the first 8 bytes of each ciphertext as the next word": the
// keystream comes from crypto/cipher.NewCTR with a zero starting counter,
// and nextWord takes the first 8 bytes of each 16-byte block).
package sampling

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// PRNG is an unbounded, deterministic byte stream keyed at construction.
type PRNG interface {
	// Read fills b with the next len(b) pseudorandom bytes. It never returns
	// an error: once constructed, the stream cannot fail to produce output.
	Read(b []byte) (int, error)
}

// CTRPRNG is a PRNG backed by AES-128 in CTR mode, keyed with a fresh
// 128-bit key per instance. The counter starts at the all-zero block and
// increments by one per 16-byte block of keystream produced.
type CTRPRNG struct {
	stream cipher.Stream
}

// NewCTRPRNG constructs a CTRPRNG from a 128-bit key. Key construction with
// a 16-byte AES key cannot fail; the error return exists only to satisfy the
// same fallible-constructor shape as the rest of the scheme's crypto
// plumbing (entropy acquisition, ring construction, ...).
func NewCTRPRNG(key [16]byte) (*CTRPRNG, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("sampling: constructing AES-CTR stream: %w", err)
	}
	iv := make([]byte, aes.BlockSize) // zero IV: counter starts at 0.
	return &CTRPRNG{stream: cipher.NewCTR(block, iv)}, nil
}

// Read fills b with the next len(b) bytes of AES-CTR keystream.
func (c *CTRPRNG) Read(b []byte) (int, error) {
	for i := range b {
		b[i] = 0
	}
	c.stream.XORKeyStream(b, b)
	return len(b), nil
}

// RandomKey draws a fresh 128-bit AES key from the operating system's
// entropy source. Per the scheme's error model, failure here is fatal and
// must abort the calling Sign/KeyGen operation without producing output.
func RandomKey() ([16]byte, error) {
	var key [16]byte
	if _, err := rand.Read(key[:]); err != nil {
		return key, fmt.Errorf("sampling: reading entropy for AES key: %w", err)
	}
	return key, nil
}

// nextWord draws the next 16-byte block from prng's stream and returns its
// first 8 bytes as a big-endian 64-bit word, so that with a CTRPRNG each
// word comes from its own counter block.
func nextWord(prng PRNG) uint64 {
	var buf [16]byte
	_, _ = prng.Read(buf[:])
	return binary.BigEndian.Uint64(buf[:8])
}
