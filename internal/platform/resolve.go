package platform

// platforms maps raw OS identifiers to platforms. Matching is exact and
// case-sensitive.
var platforms = map[string]Platform{
	"windows": Windows,
	"linux":   Linux,
	"macos":   Macos,
}

// archTokens maps raw architecture identifiers to artifact tokens.
var archTokens = map[string]ArchToken{
	"x86_64": Arch64,
	"arm":    ArchARM64,
}

// platformTokens maps platforms to the release server's naming convention.
var platformTokens = map[Platform]string{
	Windows: "win",
	Macos:   "osx",
	Linux:   "linux",
}

// Resolve maps raw OS and architecture identifiers to a release target.
// It has no side effects and returns UnsupportedPlatformError or
// UnsupportedArchitectureError for identifiers outside the tables.
func Resolve(osID, archID string) (Target, error) {
	p, err := ParsePlatform(osID)
	if err != nil {
		return Target{}, err
	}
	a, err := ParseArch(archID)
	if err != nil {
		return Target{}, err
	}
	return Target{Platform: p, Arch: a}, nil
}

// ParsePlatform maps a raw OS identifier to a Platform.
func ParsePlatform(osID string) (Platform, error) {
	p, ok := platforms[osID]
	if !ok {
		return 0, &UnsupportedPlatformError{OS: osID}
	}
	return p, nil
}

// ParseArch maps a raw architecture identifier to an ArchToken.
func ParseArch(archID string) (ArchToken, error) {
	a, ok := archTokens[archID]
	if !ok {
		return "", &UnsupportedArchitectureError{Arch: archID}
	}
	return a, nil
}

// PlatformToken returns the artifact name fragment for p, or "" if p is not
// a known platform.
func PlatformToken(p Platform) string {
	return platformTokens[p]
}
