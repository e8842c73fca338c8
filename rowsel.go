package rowsel

import (
	"context"
	"iter"
	"time"

	"github.com/hupe1980/rowsel/core"
	"github.com/hupe1980/rowsel/dispatch"
	"github.com/hupe1980/rowsel/internal/hwthreads"
	"github.com/hupe1980/rowsel/mask"
	"github.com/hupe1980/rowsel/parallel"
	"github.com/hupe1980/rowsel/partition"
)

// Selector bundles the row-selection primitives with one configuration.
//
// A Selector is safe for concurrent use.
type Selector struct {
	cfg     parallel.Config
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Selector.
func New(optFns ...Option) *Selector {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}

	threads := o.threads
	if threads <= 0 {
		threads = hwthreads.Count()
	}

	return &Selector{
		cfg: parallel.Config{
			Threads:     threads,
			MaxInFlight: o.maxInFlight,
			Logger:      o.logger.Logger,
		},
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// Threads returns the hardware thread count used for the parallel decision.
func (s *Selector) Threads() int {
	return s.cfg.Threads
}

// PartitionByBaseSize splits [1, n] into max(1, n/baseSize) balanced chunks.
func (s *Selector) PartitionByBaseSize(n, baseSize int) (iter.Seq[core.Range], error) {
	seq, err := partition.ByBaseSize(n, baseSize)
	if err != nil {
		s.logger.LogPartition(n, baseSize, 0, err)
		return nil, err
	}
	chunks, _ := partition.Count(n, baseSize)
	s.logger.LogPartition(n, baseSize, chunks, nil)
	return seq, nil
}

// ForEachChunk calls body once for every index of r, in parallel chunks of
// at least baseSize indices when more than one thread is configured and r is
// longer than baseSize. See parallel.ForEachChunk.
func (s *Selector) ForEachChunk(r core.Range, baseSize int, body func(i int) error) error {
	start := time.Now()
	par, chunks, _ := parallel.Plan(r, baseSize, s.cfg)

	err := parallel.ForEachChunk(r, baseSize, body, s.cfg)

	elapsed := time.Since(start)
	s.logger.LogForEach(r, baseSize, par, chunks, elapsed, err)
	s.metrics.RecordForEach(r.Len(), chunks, par, elapsed, err)
	return err
}

// ForEachRange is ForEachChunk for bodies that handle whole chunks.
func (s *Selector) ForEachRange(r core.Range, baseSize int, body func(chunk core.Range) error) error {
	start := time.Now()
	par, chunks, _ := parallel.Plan(r, baseSize, s.cfg)

	err := parallel.ForEachRange(r, baseSize, body, s.cfg)

	elapsed := time.Since(start)
	s.logger.LogForEach(r, baseSize, par, chunks, elapsed, err)
	s.metrics.RecordForEach(r.Len(), chunks, par, elapsed, err)
	return err
}

// Materialize returns the positions selected by v, as a core.Range when they
// are contiguous and as a core.List otherwise.
func (s *Selector) Materialize(v *mask.BitVector) core.Selection {
	start := time.Now()
	sel := mask.Materialize(v)
	s.observe(v.Len(), sel, time.Since(start))
	return sel
}

// MaterializeBools is Materialize for an unpacked boolean slice.
func (s *Selector) MaterializeBools(flags []bool) core.Selection {
	start := time.Now()
	sel := mask.MaterializeBools(flags)
	s.observe(len(flags), sel, time.Since(start))
	return sel
}

// MaterializeAll materializes several masks concurrently, at most Threads at
// a time.
func (s *Selector) MaterializeAll(ctx context.Context, vs []*mask.BitVector) ([]core.Selection, error) {
	sels, err := mask.MaterializeAll(ctx, vs, s.cfg.Threads)
	if err != nil {
		return nil, err
	}
	for i, sel := range sels {
		s.observe(vs[i].Len(), sel, 0)
	}
	return sels, nil
}

func (s *Selector) observe(length int, sel core.Selection, elapsed time.Duration) {
	_, contiguous := sel.(core.Range)
	s.logger.LogMaterialize(length, sel.Len(), contiguous, elapsed)
	s.metrics.RecordMaterialize(length, sel.Len(), contiguous, elapsed)
}

// Dispatch runs work on a new goroutine when parallel is true, and inline
// otherwise, returning a uniform handle. See dispatch.Dispatch.
func Dispatch[T any](parallel bool, work func() (T, error)) dispatch.Handle[T] {
	return dispatch.Dispatch(parallel, work)
}
