// Package conv provides checked integer conversions.
//
// Partition boundaries are computed in int64 so that (i*len) cannot overflow
// on 32-bit platforms; the results are narrowed back to int here. Mask
// positions cross into uint32 when exchanged with roaring bitmaps.
package conv
