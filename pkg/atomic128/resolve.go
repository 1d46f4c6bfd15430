package atomic128

import (
	"context"
	"sync"

	"github.com/srediag/atomic128/internal/backend"
	"github.com/srediag/atomic128/internal/logger"
	"github.com/srediag/atomic128/internal/platform"
)

type (
	// Backend performs the ordered operations of a Value.
	Backend = backend.Backend
	// Kind distinguishes the backend variants.
	Kind = backend.Kind
	// Config controls backend resolution.
	Config = backend.Config
)

const (
	FencedExchange = backend.FencedExchange
	FullOrdering   = backend.FullOrdering

	// Auto selects the backend from the host platform.
	Auto = backend.Auto
	// EnvBackend names the environment variable read by DefaultConfig.
	EnvBackend = backend.EnvBackend
)

// DefaultConfig returns the configuration DefaultBackend resolves with.
func DefaultConfig() *Config { return backend.DefaultConfig() }

// VerifyConfig checks cfg.
func VerifyConfig(cfg *Config) error { return backend.VerifyConfig(cfg) }

// Resolve builds a backend for cfg. Use it with WithBackend to inject a
// backend explicitly instead of relying on DefaultBackend.
func Resolve(ctx context.Context, cfg *Config) (*Backend, error) {
	return backend.Resolve(ctx, cfg)
}

// NewFencedBackend builds the fenced-exchange backend for this host.
func NewFencedBackend() (*Backend, error) {
	return backend.NewFenced(platform.ProbeFeatures())
}

// NewFullBackend builds the full-ordering backend for this host.
func NewFullBackend() (*Backend, error) {
	return backend.NewFull(platform.ProbeFeatures())
}

var defaultBackend = sync.OnceValues(func() (*Backend, error) {
	return backend.Resolve(context.Background(), nil)
})

// DefaultBackend resolves the process-wide backend on first use, with
// DefaultConfig, and returns the same result forever after.
func DefaultBackend() (*Backend, error) {
	return defaultBackend()
}

func mustDefaultBackend() *Backend {
	b, err := defaultBackend()
	if err != nil {
		panic(err)
	}
	return b
}

// SetLogLevel changes the level of the atomic128 loggers (0 trace through
// 5 silent). The ATOMIC128_LOG_LEVEL environment variable sets it at start.
func SetLogLevel(level int) {
	logger.SetLevel(logger.Level(level))
}
