package framesplit

import (
	"fmt"

	"github.com/go-tabular/framesplit/internal/logging"
	"github.com/go-tabular/framesplit/internal/metrics"
	"github.com/go-tabular/framesplit/types"
)

// Splitter divides frames into balanced partitions along one axis.
//
// A Splitter is stateless apart from its injected dependencies: every method
// is reentrant, never mutates its input frame, and is safe for concurrent use
// on independent frames. The zero-cost way to obtain one is NewSplitter.
type Splitter struct {
	floor   func() int
	logger  types.Logger
	metrics types.MetricsCollector
}

// NewSplitter creates a Splitter.
//
// Defaults: the minimum partition size floor comes from the process-wide
// parameter store (MinPartitionSize), logging goes to the default slog
// logger, and metrics are discarded.
//
// Parameters:
//   - opts: Optional dependencies (WithLogger, WithMetrics, WithFloorProvider,
//     WithMinPartitionSize)
//
// Returns:
//   - *Splitter: Initialized splitter
//
// Example:
//
//	s := framesplit.NewSplitter(
//	    framesplit.WithMinPartitionSize(8),
//	    framesplit.WithMetrics(collector),
//	)
func NewSplitter(opts ...Option) *Splitter {
	s := &Splitter{
		floor:   MinPartitionSize,
		logger:  logging.NewSlogDefault(),
		metrics: metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Split cuts the frame into an ordered sequence of sub-frames along one axis.
//
// Two paths:
//
//   - Uniform: without WithLengths, the frame is cut into numSplits
//     consecutive slices of the balanced chunksize for the axis. numSplits of
//     1 returns the frame itself as a one-element slice. Trailing slices may
//     be shorter than the chunksize or empty when chunksize*numSplits exceeds
//     the axis length; that is accepted behavior, not an error.
//   - Layout restore: with WithLengths, partition i covers exactly lengths[i]
//     rows or columns, in order, and numSplits is ignored. The lengths must
//     be non-negative and sum to the axis length.
//
// Single-column frames (IsColumn) are always sliced along the row axis
// regardless of the requested axis; a column vector has no meaningful column
// axis to split across.
//
// Concatenating the result in order along the split axis reproduces the
// input exactly: contiguous, non-overlapping, order preserving.
//
// Parameters:
//   - axis: AxisRows or AxisColumns (AxisBoth is invalid for splitting)
//   - numSplits: Number of partitions to produce on the uniform path, >= 1
//   - f: Frame to split (never mutated)
//   - opts: Optional WithLengths layout
//
// Returns:
//   - []types.Frame: Ordered partitions
//   - error: ErrNilFrame, ErrInvalidAxis, ErrInvalidSplitCount, or
//     ErrLengthMismatch
func (s *Splitter) Split(axis types.Axis, numSplits int, f types.Frame, opts ...SplitOption) ([]types.Frame, error) {
	o := applySplitOptions(opts)

	spans, err := s.layout(axis, numSplits, f, o)
	if err != nil {
		return nil, err
	}

	// Single uniform split returns the frame unchanged, no slicing.
	if !o.hasLengths && numSplits == 1 {
		s.metrics.RecordSplit(axis, 1)

		return []types.Frame{f}, nil
	}

	alongRows := axis == types.AxisRows || f.IsColumn()
	parts := make([]types.Frame, len(spans))
	for i, sp := range spans {
		if alongRows {
			parts[i] = f.SliceRows(sp.Offset, sp.End())
		} else {
			parts[i] = f.SliceCols(sp.Offset, sp.End())
		}
		s.metrics.ObservePartitionLength(axis, sp.Length)
	}

	s.metrics.RecordSplit(axis, len(parts))
	s.logger.Debug("split frame",
		"axis", axis.String(),
		"partitions", len(parts),
		"restored", o.hasLengths,
	)

	return parts, nil
}

// Spans computes the partition layout Split would produce, without
// materializing any sub-frame. Engines that track partition geometry can use
// the spans to cache lengths and offsets, keyed by Span.ID.
//
// The arguments and errors are identical to Split, and the i-th span always
// describes the i-th slice Split returns for the same inputs. Spans report
// the effective axis: for single-column frames that is AxisRows regardless of
// the requested axis.
//
// Parameters:
//   - axis: AxisRows or AxisColumns
//   - numSplits: Number of partitions on the uniform path, >= 1
//   - f: Frame to lay out
//   - opts: Optional WithLengths layout
//
// Returns:
//   - []types.Span: Ordered partition geometry
//   - error: Same conditions as Split
func (s *Splitter) Spans(axis types.Axis, numSplits int, f types.Frame, opts ...SplitOption) ([]types.Span, error) {
	return s.layout(axis, numSplits, f, applySplitOptions(opts))
}

// layout validates the request and computes the clamped partition ranges for
// both the uniform and length-list paths.
func (s *Splitter) layout(axis types.Axis, numSplits int, f types.Frame, o splitOptions) ([]types.Span, error) {
	if f == nil {
		return nil, types.ErrNilFrame
	}
	if axis != types.AxisRows && axis != types.AxisColumns {
		return nil, fmt.Errorf("%w: %s (splitting operates along exactly one axis)", types.ErrInvalidAxis, axis)
	}

	// Column vectors are always split along rows.
	effective := axis
	if f.IsColumn() {
		effective = types.AxisRows
	}

	length := f.NumRows()
	if effective == types.AxisColumns {
		length = f.NumCols()
	}

	if o.hasLengths {
		return lengthListSpans(effective, length, o.lengths)
	}

	if numSplits < 1 {
		return nil, fmt.Errorf("%w: got %d", types.ErrInvalidSplitCount, numSplits)
	}
	if numSplits == 1 {
		return []types.Span{{Axis: effective, Offset: 0, Length: length}}, nil
	}

	chunksize := balancedChunksize(length, numSplits, s.floor())

	return uniformSpans(effective, length, numSplits, chunksize), nil
}

// lengthListSpans restores a known layout: prefix sums over [0]+lengths give
// the half-open ranges. The supplied slice is read, never mutated.
func lengthListSpans(axis types.Axis, length int, lengths []int) ([]types.Span, error) {
	total := 0
	for _, l := range lengths {
		if l < 0 {
			return nil, fmt.Errorf("%w: negative length %d", types.ErrLengthMismatch, l)
		}
		total += l
	}
	if total != length {
		return nil, fmt.Errorf(
			"%w: lengths sum to %d, axis %s has %d",
			types.ErrLengthMismatch, total, axis, length,
		)
	}

	spans := make([]types.Span, len(lengths))
	offset := 0
	for i, l := range lengths {
		spans[i] = types.Span{Axis: axis, Offset: offset, Length: l}
		offset += l
	}

	return spans, nil
}

// uniformSpans produces numSplits consecutive chunksize-wide ranges, clamped
// to the axis length. Trailing spans shrink to zero once the axis is covered.
func uniformSpans(axis types.Axis, length, numSplits, chunksize int) []types.Span {
	spans := make([]types.Span, numSplits)
	for i := 0; i < numSplits; i++ {
		start := min(chunksize*i, length)
		end := min(chunksize*(i+1), length)
		spans[i] = types.Span{Axis: axis, Offset: start, Length: end - start}
	}

	return spans
}

func applySplitOptions(opts []SplitOption) splitOptions {
	var o splitOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
