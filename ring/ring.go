// Package ring implements arithmetic in the quotient ring R_q = Z_q[X]/(X^n+1)
// used by the GLYPH/AGLYPH signature scheme: addition, subtraction, schoolbook
// negacyclic multiplication, centered coefficient lifts and the infinity norm.
//
// Unlike lattigo's RNS rings, a scheme instance here carries exactly one prime
// modulus q, so there is no modulus chain, no NTT and no Montgomery form: the
// signature scheme does not mandate a fast transform, and schoolbook
// multiplication keeps the arithmetic a direct, auditable transcription of the
// reference construction.
package ring

import "fmt"

// Poly is a polynomial in R_q represented by its n coefficients in the
// unsigned range [0, q). The centered view is produced on demand by Centered.
type Poly struct {
	Coeffs []uint64
}

// N returns the number of coefficients of p.
func (p Poly) N() int {
	return len(p.Coeffs)
}

// CopyNew returns a deep copy of p.
func (p Poly) CopyNew() Poly {
	c := make([]uint64, len(p.Coeffs))
	copy(c, p.Coeffs)
	return Poly{Coeffs: c}
}

// Ring is the read-only descriptor of R_q = Z_q[X]/(X^n+1) for a single prime
// modulus q. A *Ring is immutable after construction and safe for concurrent
// use by multiple goroutines: no operation below mutates any state hanging
// off the receiver.
type Ring struct {
	N uint64
	Q uint64
}

// NewRing validates and returns a new Ring of degree N over modulus Q.
// N must be a power of two no smaller than 4; Q must be an odd integer > 1.
// Primality of Q is the scheme's responsibility to have chosen correctly
// (see glyph.NewParameters for the scheme-level primality check); the ring
// layer itself only needs an odd modulus to define centered lifts.
func NewRing(n uint64, q uint64) (*Ring, error) {
	if n < 4 || n&(n-1) != 0 {
		return nil, fmt.Errorf("ring: invalid degree %d (must be a power of 2 >= 4)", n)
	}
	if q < 3 || q%2 == 0 {
		return nil, fmt.Errorf("ring: invalid modulus %d (must be an odd integer > 1)", q)
	}
	return &Ring{N: n, Q: q}, nil
}

// NewPoly allocates a zero polynomial.
func (r *Ring) NewPoly() Poly {
	return Poly{Coeffs: make([]uint64, r.N)}
}

// FromUnsigned builds a Poly from coefficients already reduced to [0, q).
// Panics if the length does not match r.N or a coefficient is out of range:
// this is a constructor invariant, never reachable with well-formed callers.
func (r *Ring) FromUnsigned(coeffs []uint64) Poly {
	if uint64(len(coeffs)) != r.N {
		panic(fmt.Sprintf("ring: expected %d coefficients, got %d", r.N, len(coeffs)))
	}
	out := make([]uint64, r.N)
	for i, c := range coeffs {
		if c >= r.Q {
			panic(fmt.Sprintf("ring: coefficient %d out of range for modulus %d", c, r.Q))
		}
		out[i] = c
	}
	return Poly{Coeffs: out}
}

// FromCentered builds a Poly from centered coefficients in (-q/2, q/2],
// reducing each modulo q into the unsigned representation.
func (r *Ring) FromCentered(coeffs []int64) Poly {
	if uint64(len(coeffs)) != r.N {
		panic(fmt.Sprintf("ring: expected %d coefficients, got %d", r.N, len(coeffs)))
	}
	q := int64(r.Q)
	out := make([]uint64, r.N)
	for i, c := range coeffs {
		c %= q
		if c < 0 {
			c += q
		}
		out[i] = uint64(c)
	}
	return Poly{Coeffs: out}
}

// Centered returns the centered integer representative of every coefficient
// of p: x if x <= q/2, else x - q.
func (r *Ring) Centered(p Poly) []int64 {
	half := r.Q / 2
	out := make([]int64, len(p.Coeffs))
	for i, c := range p.Coeffs {
		if c > half {
			out[i] = int64(c) - int64(r.Q)
		} else {
			out[i] = int64(c)
		}
	}
	return out
}

// InfinityNorm returns the maximum absolute centered coefficient of p.
func (r *Ring) InfinityNorm(p Poly) uint64 {
	half := r.Q / 2
	var max uint64
	for _, c := range p.Coeffs {
		var a uint64
		if c > half {
			a = r.Q - c
		} else {
			a = c
		}
		if a > max {
			max = a
		}
	}
	return max
}

// Equal reports whether a and b hold identical coefficients.
func (r *Ring) Equal(a, b Poly) bool {
	if len(a.Coeffs) != len(b.Coeffs) {
		return false
	}
	for i := range a.Coeffs {
		if a.Coeffs[i] != b.Coeffs[i] {
			return false
		}
	}
	return true
}
