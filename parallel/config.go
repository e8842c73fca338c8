package parallel

import (
	"log/slog"

	"github.com/hupe1980/rowsel/internal/hwthreads"
)

// Config controls the parallel/sequential decision.
type Config struct {
	// Threads is the number of hardware threads available. Values <= 1 force
	// sequential execution.
	Threads int

	// MaxInFlight bounds the number of chunk workers running at once.
	// If 0, every chunk gets its own worker immediately.
	MaxInFlight int

	// Logger receives the dispatch decision at debug level. May be nil.
	Logger *slog.Logger
}

// DefaultConfig uses the hardware threads available to this process.
func DefaultConfig() Config {
	return Config{
		Threads: hwthreads.Count(),
	}
}
