// Package hwthreads reports how many hardware threads this process may run on.
//
// The count is the CPU affinity set on Linux (which honours taskset and
// cgroup cpusets) and runtime.NumCPU elsewhere, capped by GOMAXPROCS.
package hwthreads
