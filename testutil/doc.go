// Package testutil provides testing utilities for rowsel.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Masks
//
//	rng := testutil.NewRNG(seed)
//	flags := rng.Bools(1000, 0.3)      // independent flags, 30% true
//	flags = rng.Runs(1000, 3)          // exactly 3 separated runs of trues
//	flags = testutil.Run(256, 64, 128) // one run at [64,128], word aligned
//
// # Ground Truth
//
//	want := testutil.TruePositions(flags) // 1-based positions of true flags
package testutil
