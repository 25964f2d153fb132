package glyph

import "github.com/glyphsig/glyph/ring"

// SecretKey holds the two ternary ring elements s, e sampled at key
// generation. It is owned exclusively by the signer and must never be
// serialized or transmitted (spec: "no key serialization beyond the single
// ring element used", i.e. the public key).
type SecretKey struct {
	S ring.Poly
	E ring.Poly
}

// PublicKey holds t = a*s + e, the single ring element published by the
// signer. GenKeyPair and Verify exchange the public key in its packed byte
// form, not as a PublicKey value.
type PublicKey struct {
	T ring.Poly
}
