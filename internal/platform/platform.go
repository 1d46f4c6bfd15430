// Package platform identifies the host the process runs on.
//
// The resulting Tag is computed once at startup and consumed by backend
// resolution; nothing here is consulted on the hot path. Per-OS constants are
// provided in platform_<goos>.go files.
package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
	"golang.org/x/sys/cpu"

	"github.com/srediag/atomic128/internal/logger"
)

// OS is the closed set of operating systems the resolver distinguishes.
type OS int

const (
	Unknown OS = iota
	Windows
	Linux
	Mac
)

func (o OS) String() string {
	switch o {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case Mac:
		return "mac"
	default:
		return "unknown"
	}
}

// CurrentOS returns the operating system this binary was built for.
func CurrentOS() OS { return hostOS }

// Features are the CPU capabilities relevant to 128-bit atomics.
type Features struct {
	// CX16 reports LOCK CMPXCHG16B support (amd64).
	CX16 bool
	// AVX reports AVX support with OS state saving enabled. On such amd64
	// processors an aligned 16-byte VMOVDQA is single-copy atomic.
	AVX bool
	// LSE reports the ARMv8.1 large system extensions (arm64).
	LSE bool
	// BigEndian reports the byte order of GOARCH.
	BigEndian bool
}

// Host is a free-form description of the machine, informational only.
type Host struct {
	Platform   string
	Family     string
	Version    string
	KernelArch string
}

// Tag is the platform tag backend resolution is keyed by.
type Tag struct {
	OS       OS
	Arch     string
	Features Features
	Host     Host
}

func (t Tag) String() string {
	return fmt.Sprintf("%s/%s cx16=%t avx=%t lse=%t", t.OS, t.Arch,
		t.Features.CX16, t.Features.AVX, t.Features.LSE)
}

var (
	log = logger.New("platform", nil)

	// hostInfo is replaced in tests.
	hostInfo = host.InfoWithContext
)

// ProbeFeatures reads the CPU feature flags of the running processor.
func ProbeFeatures() Features {
	return Features{
		CX16:      cpu.X86.HasCX16,
		AVX:       cpu.X86.HasAVX,
		LSE:       cpu.ARM64.HasATOMICS,
		BigEndian: cpu.IsBigEndian,
	}
}

// Detect builds the Tag for the running host. A failure to describe the host
// is logged and leaves Tag.Host empty; the fields that drive backend
// selection never depend on it.
func Detect(ctx context.Context) Tag {
	tag := Tag{
		OS:       CurrentOS(),
		Arch:     runtime.GOARCH,
		Features: ProbeFeatures(),
	}
	info, err := hostInfo(ctx)
	if err != nil {
		log.Warnf("host description unavailable: %v", err)
		return tag
	}
	tag.Host = Host{
		Platform:   info.Platform,
		Family:     info.PlatformFamily,
		Version:    info.PlatformVersion,
		KernelArch: info.KernelArch,
	}
	log.Debugf("detected %s (%s %s %s)", tag, tag.Host.Platform, tag.Host.Version, tag.Host.KernelArch)
	return tag
}
