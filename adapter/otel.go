package adapter

import (
	"context"
	"runtime"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/srediag/atomic128/api"
	"github.com/srediag/atomic128/internal/platform"
	"github.com/srediag/atomic128/pkg/atomic128"
)

// RegisterMetrics registers observable gauges describing b on meter:
// atomic128.backend.info and atomic128.backend.operation.supported.
// Unregister the returned registration to stop reporting.
func RegisterMetrics(meter metric.Meter, b *atomic128.Backend) (metric.Registration, error) {
	info, err := meter.Int64ObservableGauge("atomic128.backend.info",
		metric.WithDescription("The resolved 128-bit atomic backend; always 1."))
	if err != nil {
		return nil, err
	}
	supported, err := meter.Int64ObservableGauge("atomic128.backend.operation.supported",
		metric.WithDescription("1 if the backend provides the operation, 0 otherwise."))
	if err != nil {
		return nil, err
	}
	return meter.RegisterCallback(backendCallback(b, info, supported), info, supported)
}

func backendCallback(b *atomic128.Backend, info, supported metric.Int64Observable) metric.Callback {
	infoAttrs := metric.WithAttributes(
		attribute.String("name", b.Name()),
		attribute.String("kind", b.Kind().String()),
		attribute.String("os", platform.CurrentOS().String()),
		attribute.String("arch", runtime.GOARCH),
	)
	return func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(info, 1, infoAttrs)
		for _, op := range api.Ops() {
			var n int64
			if b.Supports(op) {
				n = 1
			}
			o.ObserveInt64(supported, n, metric.WithAttributes(attribute.String("op", op.String())))
		}
		return nil
	}
}
