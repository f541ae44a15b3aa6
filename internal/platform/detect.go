package platform

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using the Go runtime and gopsutil.
type RealDetector struct {
	goos   string
	goarch string
}

// NewDetector creates a detector for the running host.
func NewDetector() Detector {
	return &RealDetector{goos: runtime.GOOS, goarch: runtime.GOARCH}
}

// NewDetectorFor creates a detector that reports the given GOOS/GOARCH pair
// instead of the running host. Distro lookup only happens when goos matches
// the running host.
func NewDetectorFor(goos, goarch string) Detector {
	return &RealDetector{goos: goos, goarch: goarch}
}

// Detect translates runtime.GOOS/GOARCH into raw identifiers and, on Linux,
// adds distribution details from gopsutil.
//
// Detection never rejects an OS or architecture; that is Resolve's job.
// A failed distro lookup leaves the distro fields empty, but a cancelled
// context is reported as an error.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	info := &Info{
		OS:     osIdentifier(d.goos),
		Arch:   archIdentifier(d.goarch),
		GOOS:   d.goos,
		GOARCH: d.goarch,
	}

	if d.goos != "linux" || runtime.GOOS != "linux" {
		return info, nil
	}

	distro, family, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
		}
		return info, nil
	}

	applyDistro(info, distro, family, version)
	return info, nil
}

// applyDistro records gopsutil's distro answer on info. The distro ID is
// normalized; the version keeps its case.
func applyDistro(info *Info, distro, family, version string) {
	if distro = normalizeDistro(distro); distro == "" {
		return
	}
	info.Distro = distro
	info.Family = mapFamily(family)
	info.Version = strings.TrimSpace(version)
}
