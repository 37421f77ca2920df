package curve3

import (
	"math"
	"sync"
)

// The binomial table holds rows of Pascal's triangle. It only ever grows, and
// rows are never modified once appended, so a row slice may be used without
// holding the lock.
var binomials = struct {
	mu   sync.Mutex
	rows [][]float64
}{
	rows: [][]float64{
		{1},
		{1, 1},
		{1, 2, 1},
		{1, 3, 3, 1},
		{1, 4, 6, 4, 1},
		{1, 5, 10, 10, 5, 1},
		{1, 6, 15, 20, 15, 6, 1},
		{1, 7, 21, 35, 35, 21, 7, 1},
	},
}

// binomialRow returns row n of Pascal's triangle, growing the table as
// necessary. The returned slice must not be modified.
func binomialRow(n int) []float64 {
	binomials.mu.Lock()
	defer binomials.mu.Unlock()
	for len(binomials.rows) <= n {
		last := binomials.rows[len(binomials.rows)-1]
		s := len(binomials.rows)
		next := make([]float64, s+1)
		next[0], next[s] = 1, 1
		for i := 1; i < s; i++ {
			next[i] = last[i-1] + last[i]
		}
		binomials.rows = append(binomials.rows, next)
	}
	return binomials.rows[n]
}

// Binomial returns the binomial coefficient C(n, k).
//
// Coefficients are stored as float64 and are exact as long as they fit in the
// 53 bits of mantissa, which holds for n ≤ 56. Values of k outside of [0, n]
// yield 0.
func Binomial(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	return binomialRow(n)[k]
}

// bernstein evaluates the Bernstein basis polynomial b_{k,n}(t).
func bernstein(n, k int, t float64) float64 {
	return Binomial(n, k) * math.Pow(1.0-t, float64(n-k)) * math.Pow(t, float64(k))
}
