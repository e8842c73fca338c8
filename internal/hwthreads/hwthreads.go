package hwthreads

import "runtime"

// Count returns the number of hardware threads available to the Go scheduler.
// It is always at least 1.
func Count() int {
	n := affinity()
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return max(1, min(n, runtime.GOMAXPROCS(0)))
}
