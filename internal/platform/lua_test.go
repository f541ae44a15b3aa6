package platform

import (
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func TestInjectPlatformTable_Linux(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	info := &Info{
		OS:      "linux",
		Arch:    "x86_64",
		GOOS:    "linux",
		GOARCH:  "amd64",
		Distro:  "ubuntu",
		Family:  FamilyDebian,
		Version: "22.04",
	}

	if err := InjectPlatformTable(L, info); err != nil {
		t.Fatalf("InjectPlatformTable() error = %v", err)
	}

	tests := []struct {
		name string
		code string
		want lua.LValue
	}{
		{"os", `return platform.os`, lua.LString("linux")},
		{"arch", `return platform.arch`, lua.LString("x86_64")},
		{"goos", `return platform.goos`, lua.LString("linux")},
		{"goarch", `return platform.goarch`, lua.LString("amd64")},
		{"token", `return platform.token`, lua.LString("linux-64")},
		{"is_linux", `return platform.is_linux`, lua.LTrue},
		{"is_macos", `return platform.is_macos`, lua.LFalse},
		{"is_windows", `return platform.is_windows`, lua.LFalse},
		{"distro.id", `return platform.distro.id`, lua.LString("ubuntu")},
		{"distro.family", `return platform.distro.family`, lua.LString("debian")},
		{"distro.version", `return platform.distro.version`, lua.LString("22.04")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := L.DoString(tt.code); err != nil {
				t.Fatalf("DoString(%q) error = %v", tt.code, err)
			}
			got := L.Get(-1)
			L.Pop(1)
			if got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestInjectPlatformTable_UnsupportedHost(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	info := &Info{OS: "freebsd", Arch: "x86_64", GOOS: "freebsd", GOARCH: "amd64"}
	if err := InjectPlatformTable(L, info); err != nil {
		t.Fatalf("InjectPlatformTable() error = %v", err)
	}

	if err := L.DoString(`return platform.token == nil and platform.distro == nil`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if got := L.Get(-1); got != lua.LTrue {
		t.Errorf("token and distro should be nil for an unsupported host, got %v", got)
	}
}

func TestInjectPlatformTable_WindowsDefaults(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	info := &Info{OS: "windows", Arch: "x86_64", GOOS: "windows", GOARCH: "amd64"}
	if err := InjectPlatformTable(L, info); err != nil {
		t.Fatalf("InjectPlatformTable() error = %v", err)
	}

	code := `return platform.is_windows and "~/micromamba/micromamba.exe" or "~/.local/bin/micromamba"`
	if err := L.DoString(code); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if got := L.Get(-1).String(); got != "~/micromamba/micromamba.exe" {
		t.Errorf("bin path = %q, want windows default", got)
	}
}

func TestInjectPlatformTable_ReadOnly(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	if err := InjectPlatformTable(L, &Info{OS: "linux", Arch: "x86_64"}); err != nil {
		t.Fatalf("InjectPlatformTable() error = %v", err)
	}

	tests := []struct {
		name string
		code string
	}{
		{"modify existing field", `platform.os = "windows"`},
		{"add new field", `platform.custom = true`},
		{"replace metatable", `setmetatable(platform, {})`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := L.DoString(tt.code)
			if err == nil {
				t.Fatalf("DoString(%q) should fail on a read-only table", tt.code)
			}
		})
	}

	err := L.DoString(`platform.os = "windows"`)
	if err == nil || !strings.Contains(err.Error(), "read-only") {
		t.Errorf("write error = %v, want read-only message", err)
	}
}
