package testutil

import (
	"math/rand"
	"sort"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bools generates n independent flags, each true with probability density.
func (r *RNG) Bools(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	flags := make([]bool, n)
	for i := range n {
		flags[i] = r.rand.Float64() < density
	}
	return flags
}

// Runs generates n flags holding exactly runs maximal runs of trues, with
// random lengths and gaps. runs must satisfy 2*runs <= n+1.
func (r *RNG) Runs(n, runs int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	flags := make([]bool, n)
	if runs == 0 {
		return flags
	}

	// 2*runs distinct cut points in [0, n]: pairs bound the runs, and since
	// all cuts differ every run and every gap between runs is non-empty.
	cuts := r.rand.Perm(n + 1)[:2*runs]
	sort.Ints(cuts)

	for k := 0; k < runs; k++ {
		lo, hi := cuts[2*k], cuts[2*k+1]
		for i := lo; i < hi; i++ {
			flags[i] = true
		}
	}

	return flags
}

// Run returns n flags that are true exactly on the 1-based span [start, stop].
func Run(n, start, stop int) []bool {
	flags := make([]bool, n)
	for i := start; i <= stop; i++ {
		flags[i-1] = true
	}
	return flags
}

// Or returns the element-wise disjunction of equally long flag slices.
func Or(a, b []bool) []bool {
	out := make([]bool, len(a))
	for i := range out {
		out[i] = a[i] || b[i]
	}
	return out
}

// TruePositions returns the 1-based positions of the true flags.
func TruePositions(flags []bool) []int {
	out := []int{}
	for i, f := range flags {
		if f {
			out = append(out, i+1)
		}
	}
	return out
}

// RunCount returns the number of maximal runs of trues.
func RunCount(flags []bool) int {
	runs := 0
	for i, f := range flags {
		if f && (i == 0 || !flags[i-1]) {
			runs++
		}
	}
	return runs
}
