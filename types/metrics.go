package types

// MetricsCollector defines the metrics recorded by the splitter.
//
// Implementations must be safe for concurrent use; the splitter is reentrant
// and may be shared across goroutines. The internal/metrics package provides
// a no-op implementation and a Prometheus-backed one.
type MetricsCollector interface {
	// RecordSplit records one completed split operation and the number of
	// partitions it produced.
	RecordSplit(axis Axis, partitions int)

	// RecordChunksize records a computed balanced chunksize for an axis.
	RecordChunksize(axis Axis, chunksize int)

	// ObservePartitionLength records the length (rows or columns, per axis)
	// of one produced partition.
	ObservePartitionLength(axis Axis, length int)
}
