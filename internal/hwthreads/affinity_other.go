//go:build !linux

package hwthreads

func affinity() int { return 0 }
