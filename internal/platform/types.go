// Package platform resolves the host operating system and CPU architecture
// into the artifact naming convention used by the micromamba release server.
//
// Resolution is a pure table lookup over a small, closed vocabulary of raw
// identifiers ("windows", "linux", "macos" and "x86_64", "arm"). Anything
// outside those tables is rejected with a typed error; there is no fallback.
// Host detection (runtime plus gopsutil distro details) lives in detect.go and
// feeds the resolver with identifiers from the same vocabulary.
package platform

import (
	"context"
	"fmt"
)

// Platform is an operating system the release server publishes artifacts for.
type Platform int

const (
	// Windows is Microsoft Windows.
	Windows Platform = iota + 1
	// Macos is Apple macOS.
	Macos
	// Linux is any Linux distribution.
	Linux
)

// String returns the raw OS identifier for the platform.
func (p Platform) String() string {
	switch p {
	case Windows:
		return "windows"
	case Macos:
		return "macos"
	case Linux:
		return "linux"
	default:
		return fmt.Sprintf("platform(%d)", int(p))
	}
}

// ArchToken is the architecture fragment of a release artifact name.
type ArchToken string

const (
	// Arch64 is the token for x86_64 builds.
	Arch64 ArchToken = "64"
	// ArchARM64 is the token for 64-bit ARM builds.
	ArchARM64 ArchToken = "arm64"
)

// String returns the token as it appears in artifact names.
func (a ArchToken) String() string {
	return string(a)
}

// Target is a resolved platform/architecture pair.
type Target struct {
	Platform Platform
	Arch     ArchToken
}

// Token returns the "<platform_token>-<arch_token>" suffix of the artifact name,
// e.g. "linux-64" or "osx-arm64".
func (t Target) Token() string {
	return PlatformToken(t.Platform) + "-" + t.Arch.String()
}

// String implements fmt.Stringer.
func (t Target) String() string {
	return t.Token()
}

// Info contains host detection results expressed in the resolver's raw
// identifier vocabulary, plus Linux distribution details for diagnostics.
type Info struct {
	OS      string // raw OS identifier ("linux", "macos", "windows", or an unsupported value)
	Arch    string // raw architecture identifier ("x86_64", "arm", or an unsupported value)
	GOOS    string // runtime.GOOS the identifiers were derived from
	GOARCH  string // runtime.GOARCH the identifiers were derived from
	Distro  string // distro ID (Linux only, e.g. "ubuntu")
	Family  string // canonical distro family (Linux only, e.g. "debian")
	Version string // distro version (Linux only, e.g. "22.04")
}

// IsLinux returns true if the host OS is Linux.
func (i *Info) IsLinux() bool {
	return i.OS == "linux"
}

// IsMacOS returns true if the host OS is macOS.
func (i *Info) IsMacOS() bool {
	return i.OS == "macos"
}

// IsWindows returns true if the host OS is Windows.
func (i *Info) IsWindows() bool {
	return i.OS == "windows"
}

// Resolve resolves the detected identifiers into a release target.
func (i *Info) Resolve() (Target, error) {
	return Resolve(i.OS, i.Arch)
}

// UnsupportedPlatformError is returned when the OS identifier has no
// release artifact.
type UnsupportedPlatformError struct {
	OS string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported operating system %q", e.OS)
}

// UnsupportedArchitectureError is returned when the architecture identifier
// has no release artifact.
type UnsupportedArchitectureError struct {
	Arch string
}

func (e *UnsupportedArchitectureError) Error() string {
	return fmt.Sprintf("unsupported architecture %q", e.Arch)
}

// Detector is the interface for host platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
