// Package core defines the index types shared by the partitioner, the
// chunked executor and the mask materializer.
//
// All positions are 1-based. A Range is inclusive on both ends; the
// canonical empty range is {1, 0}.
package core
