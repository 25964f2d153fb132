package ring

// Add returns a+b coefficient-wise mod q.
func (r *Ring) Add(a, b Poly) Poly {
	out := r.NewPoly()
	q := r.Q
	for i := range out.Coeffs {
		s := a.Coeffs[i] + b.Coeffs[i]
		if s >= q {
			s -= q
		}
		out.Coeffs[i] = s
	}
	return out
}

// Sub returns a-b coefficient-wise mod q.
func (r *Ring) Sub(a, b Poly) Poly {
	out := r.NewPoly()
	q := r.Q
	for i := range out.Coeffs {
		var s uint64
		if a.Coeffs[i] >= b.Coeffs[i] {
			s = a.Coeffs[i] - b.Coeffs[i]
		} else {
			s = q - (b.Coeffs[i] - a.Coeffs[i])
		}
		out.Coeffs[i] = s
	}
	return out
}

// MulScalar returns a*s mod q, s given as a centered integer (e.g. -1 or 1);
// negative s is reduced into [0, q) first.
func (r *Ring) MulScalar(a Poly, s int64) Poly {
	q := int64(r.Q)
	s %= q
	if s < 0 {
		s += q
	}
	out := r.NewPoly()
	for i, c := range a.Coeffs {
		out.Coeffs[i] = uint64((int64(c) * s) % q)
	}
	return out
}

// MulCoeffs returns a*b in R_q = Z_q[X]/(X^n+1) using schoolbook
// multiplication with negacyclic reduction: the coefficient of X^{n+i} is
// negated and folded into the coefficient of X^i. Schoolbook is O(n^2) but
// is explicitly permitted by the scheme (no NTT is mandated), and keeps the
// arithmetic a direct transcription of the reference polynomial-ring
// multiplication rather than lattigo's RNS/NTT machinery.
func (r *Ring) MulCoeffs(a, b Poly) Poly {
	n := int(r.N)
	q := r.Q
	acc := make([]uint64, 2*n)
	for i := 0; i < n; i++ {
		ai := a.Coeffs[i]
		if ai == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			acc[i+j] = (acc[i+j] + mulMod(ai, b.Coeffs[j], q)) % q
		}
	}
	out := r.NewPoly()
	for i := 0; i < n; i++ {
		lo := acc[i]
		hi := acc[i+n]
		if lo >= hi {
			out.Coeffs[i] = lo - hi
		} else {
			out.Coeffs[i] = q - (hi - lo)
		}
	}
	return out
}

// mulMod returns a*b mod q using a native uint64 multiply-then-reduce; the
// product of two residues fits in 64 bits because q fits comfortably under
// 2^32 for every parameter set this scheme uses.
func mulMod(a, b, q uint64) uint64 {
	return (a % q) * (b % q) % q
}
