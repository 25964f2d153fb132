/*
Package glyph implements the GLYPH/AGLYPH family of lattice-based digital
signature schemes over the Ring-Learning-With-Errors problem: a signer
publishes a ring-element public key; given a message and a matching secret
key they produce a short signature; a verifier holding only the public key
either accepts or rejects.

The scheme's hard engineering — polynomial arithmetic, deterministic
AES-CTR sampling, the hash-and-sign rejection loop, and the dense packing
codecs — lives in the ring, sampling, oracle and codec subpackages; this
package wires them together behind the three-operation API described by
the scheme: GenKeyPair, Sign and Verify.
*/
package glyph
