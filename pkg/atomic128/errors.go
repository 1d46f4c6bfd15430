package atomic128

import "github.com/srediag/atomic128/internal/backend"

var (
	// ErrUnsupportedOperation is returned by an ordered load, ordered store or
	// weak compare-and-set on a backend that lacks it. It is a static
	// capability mismatch and never goes away on retry. It matches
	// errors.ErrUnsupported.
	ErrUnsupportedOperation = backend.ErrUnsupported

	// ErrNoBackend reports that no backend could be resolved for the host.
	ErrNoBackend = backend.ErrNoBackend
)
