package framesplit

import (
	"fmt"

	"github.com/go-tabular/framesplit/types"
)

// DefaultChunksize returns the most equal chunksize possible for dividing
// length elements into numSplits chunks: the smallest C such that numSplits
// chunks of size C cover the whole length, i.e. ceil(length/numSplits).
//
// numSplits must be positive. This is a documented precondition, not a
// guarded one: numSplits == 0 panics with a division by zero.
//
// Parameters:
//   - length: The length to split (number of rows/columns), >= 0
//   - numSplits: The number of splits, > 0
//
// Returns:
//   - int: Computed chunksize
func DefaultChunksize(length, numSplits int) int {
	if length%numSplits == 0 {
		return length / numSplits
	}

	return length/numSplits + 1
}

// Chunksize computes the balanced number of rows or columns to include in
// each partition when dividing the frame into numSplits parts along one axis.
//
// The result is max(1, ceil(axisLength/numSplits), floor) where floor is the
// WithBlockSize override if given, otherwise one snapshot of the Splitter's
// minimum partition size. The floor is a true lower bound, not a tie-break:
// when numSplits is large relative to the frame it deliberately overrides the
// equal-split value to avoid producing many tiny partitions.
//
// numSplits must be positive (see DefaultChunksize).
//
// Parameters:
//   - f: Frame to size partitions for
//   - numSplits: Number of splits to separate the frame into
//   - axis: AxisRows or AxisColumns (AxisBoth is rejected; use Chunksizes)
//   - opts: Optional WithBlockSize floor override
//
// Returns:
//   - int: Balanced chunksize for the requested axis, always >= 1
//   - error: ErrNilFrame or ErrInvalidAxis
func (s *Splitter) Chunksize(f types.Frame, numSplits int, axis types.Axis, opts ...ChunkOption) (int, error) {
	if f == nil {
		return 0, types.ErrNilFrame
	}
	if axis != types.AxisRows && axis != types.AxisColumns {
		return 0, fmt.Errorf("%w: %s (use Chunksizes for both axes)", types.ErrInvalidAxis, axis)
	}

	length := f.NumRows()
	if axis == types.AxisColumns {
		length = f.NumCols()
	}

	chunksize := balancedChunksize(length, numSplits, s.resolveFloor(opts))
	s.metrics.RecordChunksize(axis, chunksize)
	s.logger.Debug("computed chunksize",
		"axis", axis.String(),
		"length", length,
		"numSplits", numSplits,
		"chunksize", chunksize,
	)

	return chunksize, nil
}

// Chunksizes computes the balanced chunksize for both axes at once.
//
// Both computations share a single snapshot of the floor, so a concurrent
// reconfiguration cannot be observed as two different values within one call.
//
// numSplits must be positive (see DefaultChunksize).
//
// Parameters:
//   - f: Frame to size partitions for
//   - numSplits: Number of splits to separate the frame into
//   - opts: Optional WithBlockSize floor override
//
// Returns:
//   - int: Balanced row chunksize, always >= 1
//   - int: Balanced column chunksize, always >= 1
//   - error: ErrNilFrame
func (s *Splitter) Chunksizes(f types.Frame, numSplits int, opts ...ChunkOption) (int, int, error) {
	if f == nil {
		return 0, 0, types.ErrNilFrame
	}

	floor := s.resolveFloor(opts)
	rowChunksize := balancedChunksize(f.NumRows(), numSplits, floor)
	colChunksize := balancedChunksize(f.NumCols(), numSplits, floor)

	s.metrics.RecordChunksize(types.AxisRows, rowChunksize)
	s.metrics.RecordChunksize(types.AxisColumns, colChunksize)
	s.logger.Debug("computed chunksizes",
		"rows", rowChunksize,
		"columns", colChunksize,
		"numSplits", numSplits,
	)

	return rowChunksize, colChunksize, nil
}

// balancedChunksize applies the floor to a ceiling-division chunksize.
// The max ordering matters: the floor overrides the equal-split value.
func balancedChunksize(length, numSplits, floor int) int {
	return max(1, DefaultChunksize(length, numSplits), floor)
}

// resolveFloor returns the effective minimum block size for one computation:
// the explicit override when given, otherwise a single read of the floor
// provider.
func (s *Splitter) resolveFloor(opts []ChunkOption) int {
	var o chunkOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.blockSize > 0 {
		return o.blockSize
	}

	return s.floor()
}
