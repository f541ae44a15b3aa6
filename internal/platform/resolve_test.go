package platform

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		os        string
		arch      string
		wantToken string
	}{
		{"linux x86_64", "linux", "x86_64", "linux-64"},
		{"linux arm", "linux", "arm", "linux-arm64"},
		{"macos x86_64", "macos", "x86_64", "osx-64"},
		{"macos arm", "macos", "arm", "osx-arm64"},
		{"windows x86_64", "windows", "x86_64", "win-64"},
		{"windows arm", "windows", "arm", "win-arm64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.os, tt.arch)
			if err != nil {
				t.Fatalf("Resolve(%q, %q) error = %v", tt.os, tt.arch, err)
			}
			if got.Token() != tt.wantToken {
				t.Errorf("Resolve(%q, %q).Token() = %q, want %q", tt.os, tt.arch, got.Token(), tt.wantToken)
			}

			// Resolution is deterministic
			again, err := Resolve(tt.os, tt.arch)
			if err != nil || again != got {
				t.Errorf("second Resolve() = %v, %v; want %v, nil", again, err, got)
			}
		})
	}
}

func TestResolve_DocumentedPairs(t *testing.T) {
	tests := []struct {
		os, arch     string
		wantPlatform string
		wantArch     ArchToken
	}{
		{"linux", "x86_64", "linux", Arch64},
		{"macos", "arm", "osx", ArchARM64},
		{"windows", "x86_64", "win", Arch64},
	}

	for _, tt := range tests {
		got, err := Resolve(tt.os, tt.arch)
		if err != nil {
			t.Fatalf("Resolve(%q, %q) error = %v", tt.os, tt.arch, err)
		}
		if PlatformToken(got.Platform) != tt.wantPlatform || got.Arch != tt.wantArch {
			t.Errorf("Resolve(%q, %q) = (%q, %q), want (%q, %q)",
				tt.os, tt.arch, PlatformToken(got.Platform), got.Arch, tt.wantPlatform, tt.wantArch)
		}
	}
}

func TestResolve_UnsupportedPlatform(t *testing.T) {
	tests := []string{"darwin", "Linux", "WINDOWS", "freebsd", "", " linux"}

	for _, osID := range tests {
		t.Run(osID, func(t *testing.T) {
			_, err := Resolve(osID, "x86_64")
			var platformErr *UnsupportedPlatformError
			if !errors.As(err, &platformErr) {
				t.Fatalf("Resolve(%q) error = %v, want *UnsupportedPlatformError", osID, err)
			}
			if platformErr.OS != osID {
				t.Errorf("UnsupportedPlatformError.OS = %q, want %q", platformErr.OS, osID)
			}
		})
	}
}

func TestResolve_UnsupportedArchitecture(t *testing.T) {
	tests := []string{"amd64", "aarch64", "arm64", "i686", "X86_64", "", "armv7"}

	for _, archID := range tests {
		t.Run(archID, func(t *testing.T) {
			_, err := Resolve("linux", archID)
			var archErr *UnsupportedArchitectureError
			if !errors.As(err, &archErr) {
				t.Fatalf("Resolve(linux, %q) error = %v, want *UnsupportedArchitectureError", archID, err)
			}
			if archErr.Arch != archID {
				t.Errorf("UnsupportedArchitectureError.Arch = %q, want %q", archErr.Arch, archID)
			}
		})
	}
}

func TestResolve_PlatformCheckedFirst(t *testing.T) {
	_, err := Resolve("plan9", "mips")
	var platformErr *UnsupportedPlatformError
	if !errors.As(err, &platformErr) {
		t.Errorf("Resolve(plan9, mips) error = %v, want *UnsupportedPlatformError", err)
	}
}

func TestPlatformToken(t *testing.T) {
	tests := []struct {
		platform Platform
		want     string
	}{
		{Windows, "win"},
		{Macos, "osx"},
		{Linux, "linux"},
		{Platform(0), ""},
		{Platform(42), ""},
	}

	for _, tt := range tests {
		t.Run(tt.platform.String(), func(t *testing.T) {
			if got := PlatformToken(tt.platform); got != tt.want {
				t.Errorf("PlatformToken(%v) = %q, want %q", tt.platform, got, tt.want)
			}
		})
	}
}

func TestPlatform_String(t *testing.T) {
	tests := []struct {
		platform Platform
		want     string
	}{
		{Windows, "windows"},
		{Macos, "macos"},
		{Linux, "linux"},
		{Platform(9), "platform(9)"},
	}

	for _, tt := range tests {
		if got := tt.platform.String(); got != tt.want {
			t.Errorf("Platform.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestPlatformTablesAgree(t *testing.T) {
	// Every platform the resolver accepts must have an artifact token.
	for osID, p := range platforms {
		if PlatformToken(p) == "" {
			t.Errorf("platform %q has no token", osID)
		}
		if p.String() != osID {
			t.Errorf("Platform(%d).String() = %q, want %q", p, p.String(), osID)
		}
	}
}
