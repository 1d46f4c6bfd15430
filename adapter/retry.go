package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"

	"github.com/srediag/atomic128/api"
	"github.com/srediag/atomic128/pkg/atomic128"
)

// ErrContended is returned by Update when the policy stops before an
// exchange lands.
var ErrContended = errors.New("atomic128: update lost every exchange")

// Update applies fn to v with a compare-and-set loop paced by policy.
//
// fn receives a private copy of the value the next exchange expects and
// edits it in place; it may run several times and must not keep next. An
// error from fn ends Update with that error. The loop seeds its guess with
// an opaque load when the backend has one and with zero otherwise; every
// failed exchange refreshes the guess.
func Update(ctx context.Context, v *atomic128.Value, fn func(next *atomic128.Value) error, policy backoff.BackOff) error {
	b := v.Backend()
	expected := atomic128.New(atomic128.WithBackend(b), atomic128.WithWordOrder(v.Order()))
	next := atomic128.New(atomic128.WithBackend(b), atomic128.WithWordOrder(v.Order()))
	if b.Supports(api.GetOpaque) {
		if err := v.GetOpaque(expected); err != nil {
			return err
		}
	}

	attempts := 0
	err := backoff.Retry(func() error {
		attempts++
		next.CopyFrom(expected)
		if err := fn(next); err != nil {
			return backoff.Permanent(err)
		}
		if v.CompareAndSet(expected, next) {
			return nil
		}
		return ErrContended
	}, backoff.WithContext(policy, ctx))
	if errors.Is(err, ErrContended) {
		return fmt.Errorf("%w after %d attempts", ErrContended, attempts)
	}
	return err
}
