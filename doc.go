// Package framesplit computes balanced partition layouts for two-dimensional
// tabular data and performs the slicing that produces those partitions.
//
// Framesplit is the sizing/splitting layer of a partitioned-execution engine:
// the engine decides when to split and what to do with each partition, while
// this library decides how big each partition should be and cuts the data
// accordingly. It can also restore a previously known, possibly non-uniform
// layout from an explicit list of partition lengths.
//
// # Quick Start
//
// Split a frame into three row partitions:
//
//	import (
//	    "github.com/go-tabular/framesplit"
//	    "github.com/go-tabular/framesplit/frame"
//	)
//
//	t, _ := frame.NewTable(
//	    []string{"id", "score"},
//	    [][]any{{1, 2, 3, 4, 5}, {9.5, 8.0, 7.5, 6.0, 5.5}},
//	)
//
//	s := framesplit.NewSplitter()
//	parts, err := s.Split(framesplit.AxisRows, 3, t)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Key Behaviors
//
//   - Balanced chunksize: each partition gets ceil(length/numSplits) rows or
//     columns, never less than the configured minimum partition size
//   - Layout restore: WithLengths reproduces an exact prior partitioning
//   - Single-column vectors are always split along the row axis
//   - Trailing partitions may be shorter than the chunksize or empty; that is
//     accepted behavior, not an error
//
// # Configuration
//
// The minimum partition size floor is a process-wide parameter (default 32)
// read once per call. It can be set directly, loaded from YAML, or taken from
// the FRAMESPLIT_MIN_PARTITION_SIZE environment variable. Individual Splitter
// instances can override it via options:
//
//	s := framesplit.NewSplitter(framesplit.WithMinPartitionSize(8))
//
// # Frame Implementations
//
// The frame package provides in-memory Table and Column implementations; the
// arrowframe package adapts Apache Arrow records and arrays. Any type
// satisfying types.Frame works.
package framesplit
