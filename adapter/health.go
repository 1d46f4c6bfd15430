package adapter

import (
	"fmt"

	"github.com/heptiolabs/healthcheck"

	"github.com/srediag/atomic128/internal/logger"
	"github.com/srediag/atomic128/pkg/atomic128"
)

const (
	ReadinessCheck = "atomic128-backend"
	LivenessCheck  = "atomic128-cas"
)

var log = logger.New("adapter", nil)

// RegisterHealthChecks adds a readiness check that the process-wide backend
// resolves and a liveness check that exercises a compare-and-set on b.
// A nil b checks the process-wide backend.
func RegisterHealthChecks(h healthcheck.Handler, b *atomic128.Backend) {
	h.AddReadinessCheck(ReadinessCheck, func() error {
		if _, err := atomic128.DefaultBackend(); err != nil {
			log.Warnf("readiness: %v", err)
			return err
		}
		return nil
	})
	h.AddLivenessCheck(LivenessCheck, func() error {
		be := b
		if be == nil {
			var err error
			if be, err = atomic128.DefaultBackend(); err != nil {
				return err
			}
		}
		if err := casSelfTest(be); err != nil {
			log.Errorf("liveness: %v", err)
			return err
		}
		return nil
	})
}

// casSelfTest runs one failing and one succeeding exchange on a private
// Value and checks both outcomes.
func casSelfTest(b *atomic128.Backend) error {
	v := atomic128.NewFrom(1, 2, atomic128.WithBackend(b))
	expected := atomic128.NewFrom(1, 3, atomic128.WithBackend(b))
	candidate := atomic128.NewFrom(^uint64(0), 0, atomic128.WithBackend(b))
	if v.CompareAndSet(expected, candidate) {
		return fmt.Errorf("atomic128: %s exchanged on a mismatch", b)
	}
	if expected.Low() != 2 {
		return fmt.Errorf("atomic128: %s reported %s on a mismatch, want 0x1:0x2", b, expected)
	}
	if !v.CompareAndSet(expected, candidate) || !v.Equal(candidate) {
		return fmt.Errorf("atomic128: %s failed to exchange on a match", b)
	}
	return nil
}
