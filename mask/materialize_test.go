package mask

import (
	"fmt"
	"testing"

	"github.com/hupe1980/rowsel/core"
	"github.com/hupe1980/rowsel/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialize_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		flags []bool
		want  core.Selection
	}{
		{"all false", []bool{false, false, false}, core.NewRange(1, 0)},
		{"all true", []bool{true, true, true, true}, core.NewRange(1, 4)},
		{"two runs", []bool{false, true, true, false, true}, core.List{2, 3, 5}},
		{"empty mask", nil, core.EmptyRange},
		{"single middle", []bool{false, false, true, false}, core.NewRange(3, 3)},
		{"trailing run", []bool{false, true, true}, core.NewRange(2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Materialize(FromBools(tt.flags)))
			assert.Equal(t, tt.want, MaterializeBools(tt.flags))
		})
	}
}

func TestMaterialize_NilVector(t *testing.T) {
	assert.Equal(t, core.EmptyRange, Materialize(nil))
}

func TestMaterialize_WordLevelRuns(t *testing.T) {
	const n = 64 * 5

	tests := []struct {
		name        string
		start, stop int
	}{
		{"whole second word", 65, 128},
		{"words two to four", 65, 256},
		{"crosses one boundary", 60, 70},
		{"ends on boundary", 10, 128},
		{"starts on boundary", 129, 300},
		{"last word partial", 257, 319},
		{"reaches the end", 200, 320},
		{"single bit at boundary", 64, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Materialize(FromBools(testutil.Run(n, tt.start, tt.stop)))
			assert.Equal(t, core.NewRange(tt.start, tt.stop), got)
		})
	}
}

// Two runs placed at every combination of word-boundary-adjacent offsets.
// This covers a closed run followed by an all-ones word as well as a split
// mixed word, with runs ending and starting exactly on word boundaries.
func TestMaterialize_TwoRunsAtBoundaries(t *testing.T) {
	const n = 64 * 4

	points := []int{1, 2, 62, 63, 64, 65, 66, 127, 128, 129, 130, 191, 192, 193, 255, 256}

	for _, a1 := range points {
		for _, b1 := range points {
			for _, a2 := range points {
				for _, b2 := range points {
					if !(a1 <= b1 && b1+1 < a2 && a2 <= b2) {
						continue
					}
					flags := testutil.Or(testutil.Run(n, a1, b1), testutil.Run(n, a2, b2))
					got := Materialize(FromBools(flags))

					list, ok := got.(core.List)
					if !ok {
						t.Fatalf("runs [%d,%d] [%d,%d]: got %T %v, want list", a1, b1, a2, b2, got, got)
					}
					if want := testutil.TruePositions(flags); !equalInts(want, list) {
						t.Fatalf("runs [%d,%d] [%d,%d]: got %v, want %v", a1, b1, a2, b2, list, want)
					}
				}
			}
		}
	}
}

func TestMaterialize_SecondAllOnesWordAfterClosedRun(t *testing.T) {
	// Word 0 closes a run at bit 63, word 1 is empty, word 2 is all ones.
	v, err := FromWords([]uint64{1 << 63, 0, allOnes, 0}, 256)
	require.NoError(t, err)

	got := Materialize(v)
	want := append([]int{64}, core.NewRange(129, 192).Expand()...)
	assert.Equal(t, core.List(want), got)
}

func TestMaterialize_SplitMixedWord(t *testing.T) {
	// Bits 0 and 2 of word 1: the ones are interrupted inside one word.
	v, err := FromWords([]uint64{0, 0b101}, 128)
	require.NoError(t, err)

	assert.Equal(t, core.List{65, 67}, Materialize(v))
}

func TestMaterialize_OpenRunBrokenAtWordStart(t *testing.T) {
	// Word 0 ends with a one, word 1 starts with a zero then ones.
	v, err := FromWords([]uint64{1 << 63, 0b110}, 128)
	require.NoError(t, err)

	assert.Equal(t, core.List{64, 66, 67}, Materialize(v))
}

func TestMaterialize_RandomProperties(t *testing.T) {
	rng := testutil.NewRNG(4711)

	lengths := []int{1, 2, 63, 64, 65, 127, 128, 129, 200, 640, 1000}

	for _, n := range lengths {
		for trial := 0; trial < 50; trial++ {
			var flags []bool
			switch trial % 3 {
			case 0:
				flags = rng.Bools(n, float64(trial%10)/10)
			default:
				flags = rng.Runs(n, rng.Intn(min(4, (n+1)/2)+1))
			}

			name := fmt.Sprintf("n=%d trial=%d", n, trial)
			got := Materialize(FromBools(flags))
			want := testutil.TruePositions(flags)

			if !equalInts(want, got.Expand()) {
				t.Fatalf("%s: got %v, want %v", name, got.Expand(), want)
			}

			_, isRange := got.(core.Range)
			if runs := testutil.RunCount(flags); isRange != (runs <= 1) {
				t.Fatalf("%s: %d runs materialized as %T", name, runs, got)
			}
			if got.Len() != len(want) {
				t.Fatalf("%s: Len %d, want %d", name, got.Len(), len(want))
			}

			assert.Equal(t, got, Materialize(FromBools(flags)), name)
			assert.Equal(t, got, MaterializeBools(flags), name)
		}
	}
}

func TestMaterialize_DoesNotModifyMask(t *testing.T) {
	words := []uint64{0xF0F0, allOnes, 0}
	before := append([]uint64(nil), words...)

	v, err := FromWords(words, 192)
	require.NoError(t, err)
	Materialize(v)

	assert.Equal(t, before, words)
}

func TestMaterialize_ContiguousDoesNotAllocateList(t *testing.T) {
	const n = 1 << 20
	v := FromBools(testutil.Run(n, 1000, n-1000))

	allocs := testing.AllocsPerRun(10, func() {
		_ = Materialize(v)
	})
	// At most the interface box for the returned range.
	assert.LessOrEqual(t, allocs, 1.0)
}

func TestRunScanner_Transitions(t *testing.T) {
	tests := []struct {
		name      string
		from      runScanner
		word      uint64
		wantOK    bool
		wantState scanState
		wantStart int
		wantStop  int
	}{
		{"zero word before any run", runScanner{}, 0, true, noRunYet, 0, 0},
		{"all ones opens", runScanner{}, allOnes, true, runOpen, 65, 0},
		{"low bits open and close", runScanner{}, 0b1100, true, runClosed, 67, 68},
		{"high bits stay open", runScanner{}, allOnes &^ (1<<60 - 1), true, runOpen, 125, 0},
		{"zero closes open run", runScanner{state: runOpen, start: 10}, 0, true, runClosed, 10, 64},
		{"all ones extends", runScanner{state: runOpen, start: 10}, allOnes, true, runOpen, 10, 0},
		{"low bits extend then close", runScanner{state: runOpen, start: 10}, 0b111, true, runClosed, 10, 67},
		{"gap after open run", runScanner{state: runOpen, start: 10}, 0b110, false, mustList, 10, 0},
		{"all ones after closed", runScanner{state: runClosed, start: 3, stop: 5}, allOnes, false, mustList, 3, 5},
		{"mixed after closed", runScanner{state: runClosed, start: 3, stop: 5}, 0b1, false, mustList, 3, 5},
		{"zero after closed", runScanner{state: runClosed, start: 3, stop: 5}, 0, true, runClosed, 3, 5},
		{"split word", runScanner{}, 0b101, false, mustList, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.from
			ok := s.step(tt.word, 64)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantState.String(), s.state.String())
			assert.Equal(t, tt.wantStart, s.start)
			assert.Equal(t, tt.wantStop, s.stop)
		})
	}
}

func TestInvariantError(t *testing.T) {
	err := &InvariantError{Want: 3, Got: 2, Msg: "emitted position count"}
	assert.Equal(t, "mask: invariant violated: emitted position count (want 3, got 2)", err.Error())

	assert.PanicsWithError(t, "mask: invariant violated: emitted position count (want 2, got 1)", func() {
		checkList(core.List{1}, 2, 10)
	})

	func() {
		defer func() {
			r := recover()
			ie, ok := r.(*InvariantError)
			require.True(t, ok, "panic value %T", r)
			assert.Equal(t, InvariantError{Want: 2, Got: 1, Msg: "emitted position count"}, *ie)
		}()
		checkList(core.List{1}, 2, 10)
	}()
	assert.Panics(t, func() { checkList(core.List{3, 2}, 2, 10) })
	assert.Panics(t, func() { checkList(core.List{3, 11}, 2, 10) })
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
