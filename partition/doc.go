// Package partition splits a 1-based index domain into balanced chunks.
//
// Chunk i of k over a domain of length n spans
//
//	start = 1 + ceil((i-1)*n/k)
//	stop  = ceil(i*n/k)
//
// which yields disjoint, ordered, gap-free chunks whose sizes differ by at
// most one, the larger chunks first: Partition(10, 3) is [1,4] [5,7] [8,10].
// Boundaries depend only on (n, k), so repeated partitioning of the same
// inputs is deterministic.
package partition
