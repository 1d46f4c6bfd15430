package backend

import (
	"fmt"
	"runtime"
	"sort"

	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/srediag/atomic128/internal/platform"
)

// Factory builds a backend for a platform tag.
type Factory func(tag platform.Tag) (*Backend, error)

var factories = cmap.New[Factory]()

func init() {
	Register(FencedExchange.String(), forHostArch(NewFenced))
	Register(FullOrdering.String(), forHostArch(NewFull))
}

// forHostArch refuses tags describing another architecture: the features of
// a foreign tag say nothing about the instructions this binary can run.
func forHostArch(build func(platform.Features) (*Backend, error)) Factory {
	return func(tag platform.Tag) (*Backend, error) {
		if tag.Arch != runtime.GOARCH {
			return nil, fmt.Errorf("%w: tag is %s, binary is %s", ErrNoBackend, tag.Arch, runtime.GOARCH)
		}
		return build(tag.Features)
	}
}

// Register installs f under name, replacing any previous factory.
func Register(name string, f Factory) {
	factories.Set(name, f)
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	return factories.Get(name)
}

// Names returns the registered backend names, sorted.
func Names() []string {
	names := factories.Keys()
	sort.Strings(names)
	return names
}
