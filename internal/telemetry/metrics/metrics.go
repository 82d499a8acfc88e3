// Package metrics provides Prometheus-backed observability for the
// codec's CLI and serve command: rows converted, errors by kind, and
// per-column conversion latency.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RowsConverted counts rows successfully moved through
	// EncodeColumn/DecodeColumn. Labels: direction (encode/decode),
	// element_type.
	RowsConverted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flashcodec_rows_converted_total",
			Help: "Total number of rows converted",
		},
		[]string{"direction", "element_type"},
	)

	// ConversionErrors counts codec errors by kind. Labels: direction,
	// kind (type_mismatch/not_implemented/logical_error).
	ConversionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flashcodec_conversion_errors_total",
			Help: "Total number of column conversion errors",
		},
		[]string{"direction", "kind"},
	)

	// ColumnLatency tracks the distribution of per-column conversion
	// latency in nanoseconds. Bucketed for the sub-millisecond to
	// sub-second range a single column slice conversion falls into.
	ColumnLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "flashcodec_column_latency_nanoseconds",
			Help: "Column conversion latency in nanoseconds",
			Buckets: []float64{
				1e3, // 1us
				1e4, // 10us
				1e5, // 100us
				1e6, // 1ms
				1e7, // 10ms
				1e8, // 100ms
				1e9, // 1s
			},
		},
		[]string{"direction", "element_type"},
	)
)

// Timer measures elapsed wall time for a single column conversion call
// and records it to ColumnLatency on Stop.
type Timer struct {
	direction   string
	elementType string
	start       time.Time
}

// NewTimer starts a timer for a column conversion in the given
// direction ("encode" or "decode") and element type.
func NewTimer(direction, elementType string) *Timer {
	return &Timer{direction: direction, elementType: elementType, start: time.Now()}
}

// Stop records the elapsed duration and returns it.
func (t *Timer) Stop() time.Duration {
	d := time.Since(t.start)
	ColumnLatency.WithLabelValues(t.direction, t.elementType).Observe(float64(d.Nanoseconds()))
	return d
}
