package metrics

import "github.com/go-tabular/framesplit/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	collector := metrics.NewNop()
//	s := framesplit.NewSplitter(framesplit.WithMetrics(collector))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordSplit discards the split counter.
func (n *NopMetrics) RecordSplit(_ /* axis */ types.Axis, _ /* partitions */ int) {
	// No-op
}

// RecordChunksize discards the chunksize observation.
func (n *NopMetrics) RecordChunksize(_ /* axis */ types.Axis, _ /* chunksize */ int) {
	// No-op
}

// ObservePartitionLength discards the partition length observation.
func (n *NopMetrics) ObservePartitionLength(_ /* axis */ types.Axis, _ /* length */ int) {
	// No-op
}
