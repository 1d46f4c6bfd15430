//go:build (!amd64 && !arm64) || noasm

package backend

import "github.com/srediag/atomic128/internal/platform"

// No 128-bit primitive is available to Go on this target; resolution reports
// ErrNoBackend.

func fencedPrimitives(platform.Features) (primitives, bool) { return primitives{}, false }

func fullPrimitives(platform.Features) (primitives, bool) { return primitives{}, false }
