// Package mask turns boolean selection masks into the row positions they
// select.
//
// A BitVector packs one flag per bit into uint64 words: bit i of word w is
// the 1-based position w*64+i+1. Materialize scans the words and returns a
// core.Range whenever the set bits form one contiguous run (no allocation),
// and a core.List otherwise:
//
//	v := mask.FromBools([]bool{false, true, true, false, true})
//	switch sel := mask.Materialize(v).(type) {
//	case core.Range:
//	    // contiguous: rows sel.Start..sel.Stop
//	case core.List:
//	    // explicit positions, here [2 3 5]
//	}
//
// The scan is a small state machine over words:
//
//	noRunYet  --ones-->         runOpen
//	runOpen   --zero gap-->     runClosed
//	runClosed --more ones-->    mustList
//	any       --split word-->   mustList
//
// Zero words and all-ones words are handled without per-bit work. In the
// mustList state the first run is back-filled arithmetically and the rest is
// decoded with a clear-lowest-set-bit loop.
package mask
