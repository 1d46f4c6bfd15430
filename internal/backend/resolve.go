package backend

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/srediag/atomic128/internal/logger"
	"github.com/srediag/atomic128/internal/platform"
)

const (
	// Auto selects the backend from the platform tag.
	Auto = "auto"

	// EnvBackend overrides Config.Backend in DefaultConfig.
	EnvBackend = "ATOMIC128_BACKEND"

	instrumentationName = "github.com/srediag/atomic128"
)

var log = logger.New("backend", nil)

// Config controls backend resolution.
type Config struct {
	// Backend is Auto or a registered backend name.
	Backend string
	// Platform replaces platform detection when set.
	Platform *platform.Tag
	// Tracer records the resolution span. Nil uses the global provider.
	Tracer trace.Tracer
}

// DefaultConfig returns the configuration used for the process-wide backend.
func DefaultConfig() *Config {
	c := &Config{Backend: Auto}
	if v := strings.TrimSpace(os.Getenv(EnvBackend)); v != "" {
		c.Backend = strings.ToLower(v)
	}
	return c
}

// VerifyConfig checks that c names a known backend.
func VerifyConfig(c *Config) error {
	if c == nil {
		return fmt.Errorf("atomic128: nil config")
	}
	if c.Backend == Auto {
		return nil
	}
	if _, ok := Lookup(c.Backend); !ok {
		return fmt.Errorf("atomic128: unknown backend %q, want %s or one of %v", c.Backend, Auto, Names())
	}
	return nil
}

// Select picks the backend kind for tag:
//
//	amd64 with CX16 and AVX  full-ordering
//	amd64 with CX16          fenced-exchange
//	arm64                    full-ordering
//
// Anything else has no backend.
func Select(tag platform.Tag) (Kind, error) {
	f := tag.Features
	switch tag.Arch {
	case "amd64":
		switch {
		case f.CX16 && f.AVX:
			return FullOrdering, nil
		case f.CX16:
			return FencedExchange, nil
		}
	case "arm64":
		return FullOrdering, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrNoBackend, tag)
}

// Resolve builds the backend described by cfg. A nil cfg means
// DefaultConfig(). Any error wraps ErrNoBackend or describes an invalid
// config; callers must treat it as fatal for atomic128 use.
func Resolve(ctx context.Context, cfg *Config) (b *Backend, err error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(instrumentationName)
	}
	ctx, span := tracer.Start(ctx, "atomic128.backend.resolve")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			log.Errorf("backend resolution failed: %v", err)
		}
		span.End()
	}()

	if err = VerifyConfig(cfg); err != nil {
		return nil, err
	}
	var tag platform.Tag
	if cfg.Platform != nil {
		tag = *cfg.Platform
	} else {
		tag = platform.Detect(ctx)
	}
	span.SetAttributes(
		attribute.String("atomic128.os", tag.OS.String()),
		attribute.String("atomic128.arch", tag.Arch),
		attribute.String("atomic128.requested", cfg.Backend),
	)

	name := cfg.Backend
	if name == Auto {
		var kind Kind
		if kind, err = Select(tag); err != nil {
			return nil, err
		}
		name = kind.String()
	}
	factory, _ := Lookup(name)
	if b, err = factory(tag); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("atomic128.backend", b.Name()))
	log.Infof("resolved %s backend for %s", b.Name(), tag)
	return b, nil
}
