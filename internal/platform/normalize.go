package platform

import "strings"

// Linux distribution family constants.
const (
	FamilyDebian  = "debian"  // Debian, Ubuntu, Linux Mint
	FamilyRHEL    = "rhel"    // RHEL, CentOS, Rocky Linux, AlmaLinux
	FamilyFedora  = "fedora"  // Fedora
	FamilySUSE    = "suse"    // openSUSE, SLES
	FamilyArch    = "arch"    // Arch Linux, Manjaro
	FamilyAlpine  = "alpine"  // Alpine Linux
	FamilyUnknown = "unknown" // Unrecognized distributions
)

// familyMap normalizes the family strings gopsutil reports.
var familyMap = map[string]string{
	"debian":   FamilyDebian,
	"ubuntu":   FamilyDebian,
	"rhel":     FamilyRHEL,
	"centos":   FamilyRHEL,
	"rocky":    FamilyRHEL,
	"fedora":   FamilyFedora,
	"suse":     FamilySUSE,
	"opensuse": FamilySUSE,
	"arch":     FamilyArch,
	"manjaro":  FamilyArch,
	"alpine":   FamilyAlpine,
}

// rawOS translates runtime.GOOS into the resolver's OS vocabulary.
// Unknown values pass through unchanged so Resolve can reject them by name.
var rawOS = map[string]string{
	"windows": "windows",
	"linux":   "linux",
	"darwin":  "macos",
}

// rawArch translates runtime.GOARCH into the resolver's architecture
// vocabulary. The release server names its 64-bit ARM builds "arm64" and
// the resolver keys them on "arm", so Go's arm64 maps there. 32-bit arm has
// no artifact and keeps its own name.
var rawArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm",
	"arm":   "armv7",
}

func osIdentifier(goos string) string {
	if id, ok := rawOS[goos]; ok {
		return id
	}
	return goos
}

func archIdentifier(goarch string) string {
	if id, ok := rawArch[goarch]; ok {
		return id
	}
	return goarch
}

// normalizeDistro lowercases and trims distro identifiers.
func normalizeDistro(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// mapFamily maps distribution family strings to canonical family names.
func mapFamily(family string) string {
	if canonical, ok := familyMap[normalizeDistro(family)]; ok {
		return canonical
	}
	return FamilyUnknown
}
