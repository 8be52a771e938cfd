package framesplit

import "github.com/go-tabular/framesplit/types"

// Option configures a Splitter with optional dependencies.
type Option func(*Splitter)

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewSplitter
//
// Example:
//
//	logger := zap.NewExample().Sugar()
//	s := framesplit.NewSplitter(framesplit.WithLogger(logger))
func WithLogger(logger types.Logger) Option {
	return func(s *Splitter) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewSplitter
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "myengine")
//	s := framesplit.NewSplitter(framesplit.WithMetrics(collector))
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(s *Splitter) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

// WithFloorProvider sets the accessor used to resolve the minimum partition
// size floor. The provider is invoked exactly once per chunksize computation,
// so a provider backed by shared state yields one atomic snapshot per call.
//
// Parameters:
//   - provider: Function returning the current floor
//
// Returns:
//   - Option: Functional option for NewSplitter
//
// Example:
//
//	s := framesplit.NewSplitter(framesplit.WithFloorProvider(func() int {
//	    return engineConfig.MinPartitionSize
//	}))
func WithFloorProvider(provider func() int) Option {
	return func(s *Splitter) {
		if provider != nil {
			s.floor = provider
		}
	}
}

// WithMinPartitionSize pins the minimum partition size floor for this
// Splitter to a fixed value, bypassing the process-wide parameter store.
// Useful in tests that need a specific floor without mutating global state.
//
// Parameters:
//   - n: Fixed floor value
//
// Returns:
//   - Option: Functional option for NewSplitter
func WithMinPartitionSize(n int) Option {
	return func(s *Splitter) {
		s.floor = func() int { return n }
	}
}

// ChunkOption configures a single chunksize computation.
type ChunkOption func(*chunkOptions)

type chunkOptions struct {
	// blockSize overrides the floor for this call; 0 means "use the
	// Splitter's floor provider".
	blockSize int
}

// WithBlockSize overrides the minimum block size for one chunksize
// computation, taking precedence over the Splitter's floor provider.
//
// Parameters:
//   - n: Minimum number of rows/columns in a single split
//
// Returns:
//   - ChunkOption: Functional option for Chunksize and Chunksizes
func WithBlockSize(n int) ChunkOption {
	return func(o *chunkOptions) {
		o.blockSize = n
	}
}

// SplitOption configures a single split operation.
type SplitOption func(*splitOptions)

type splitOptions struct {
	lengths    []int
	hasLengths bool
}

// WithLengths supplies an explicit list of partition lengths, switching the
// split to the layout-restore path: partition i receives exactly lengths[i]
// rows or columns, in order. The split count argument is ignored on this
// path.
//
// The entries must be non-negative and sum to the length of the axis being
// split; otherwise the split fails with ErrLengthMismatch. The slice is read,
// never mutated.
//
// Parameters:
//   - lengths: Ordered partition sizes to reproduce
//
// Returns:
//   - SplitOption: Functional option for Split and Spans
//
// Example:
//
//	// Restore the original three-partition layout of a 5-row frame.
//	parts, err := s.Split(framesplit.AxisRows, 0, f,
//	    framesplit.WithLengths([]int{2, 2, 1}))
func WithLengths(lengths []int) SplitOption {
	return func(o *splitOptions) {
		o.lengths = lengths
		o.hasLengths = true
	}
}
