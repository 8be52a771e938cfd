package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-tabular/framesplit/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metric registration is deferred until first use so that constructing a
// collector never panics on duplicate registration in tests that share the
// default registerer.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	splitsTotal     *prometheus.CounterVec
	chunksize       *prometheus.HistogramVec
	partitionLength *prometheus.HistogramVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "framesplit" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "framesplit"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.splitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "splitter",
			Name:      "splits_total",
			Help:      "Total split operations by axis.",
		}, []string{"axis"})

		p.chunksize = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "splitter",
			Name:      "chunksize",
			Help:      "Computed balanced chunksizes by axis.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"axis"})

		p.partitionLength = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "splitter",
			Name:      "partition_length",
			Help:      "Lengths of produced partitions by axis.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"axis"})

		p.reg.MustRegister(p.splitsTotal, p.chunksize, p.partitionLength)
	})
}

// RecordSplit increments the split counter for the axis.
func (p *PrometheusCollector) RecordSplit(axis types.Axis, _ /* partitions */ int) {
	p.ensureRegistered()
	p.splitsTotal.WithLabelValues(axis.String()).Inc()
}

// RecordChunksize observes a computed chunksize for the axis.
func (p *PrometheusCollector) RecordChunksize(axis types.Axis, chunksize int) {
	p.ensureRegistered()
	p.chunksize.WithLabelValues(axis.String()).Observe(float64(chunksize))
}

// ObservePartitionLength observes the length of one produced partition.
func (p *PrometheusCollector) ObservePartitionLength(axis types.Axis, length int) {
	p.ensureRegistered()
	p.partitionLength.WithLabelValues(axis.String()).Observe(float64(length))
}
