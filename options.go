package rowsel

type options struct {
	threads          int
	maxInFlight      int
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures a Selector.
type Option func(*options)

// WithThreads sets the number of hardware threads the parallel/sequential
// decision assumes. Values <= 1 force sequential execution.
//
// If unset, the CPU affinity of the process (capped by GOMAXPROCS) is used.
func WithThreads(n int) Option {
	return func(o *options) {
		o.threads = n
	}
}

// WithMaxInFlight bounds how many chunk workers run at once.
// 0 (the default) starts one worker per chunk.
func WithMaxInFlight(n int) Option {
	return func(o *options) {
		o.maxInFlight = n
	}
}

// WithLogger configures structured logging.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &rowsel.BasicMetricsCollector{}
//	sel := rowsel.New(rowsel.WithMetricsCollector(metrics))
//	// ... run selections ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
