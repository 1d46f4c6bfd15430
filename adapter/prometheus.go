// Package adapter connects an atomic128 backend to monitoring and retry
// tooling: Prometheus, OpenTelemetry metrics, heptiolabs health checks and
// backoff-driven update loops.
package adapter

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/srediag/atomic128/api"
	"github.com/srediag/atomic128/internal/platform"
	"github.com/srediag/atomic128/pkg/atomic128"
)

// Collector exports what a backend can do as Prometheus metrics.
type Collector struct {
	backend   *atomic128.Backend
	info      *prometheus.Desc
	supported *prometheus.Desc
}

// NewCollector returns a Collector for b. Register it with a
// prometheus.Registerer.
func NewCollector(b *atomic128.Backend) *Collector {
	return &Collector{
		backend: b,
		info: prometheus.NewDesc(
			"atomic128_backend_info",
			"The resolved 128-bit atomic backend; always 1.",
			[]string{"name", "kind", "os", "arch"}, nil,
		),
		supported: prometheus.NewDesc(
			"atomic128_backend_operation_supported",
			"1 if the backend provides the operation, 0 if calling it fails with an unsupported error.",
			[]string{"op"}, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.info
	ch <- c.supported
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.info, prometheus.GaugeValue, 1,
		c.backend.Name(), c.backend.Kind().String(), platform.CurrentOS().String(), runtime.GOARCH)
	for _, op := range api.Ops() {
		ch <- prometheus.MustNewConstMetric(c.supported, prometheus.GaugeValue, boolFloat(c.backend.Supports(op)), op.String())
	}
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
