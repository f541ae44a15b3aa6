// Package testutil provides utilities for testing mambastrap in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Env describes the isolated directories created by SetupTestEnv.
type Env struct {
	// Home is the fake home directory ($HOME and %USERPROFILE%).
	Home string
	// ConfigDir holds configuration files written by the test.
	ConfigDir string
}

// SetupTestEnv points the home directory at a temp location and clears
// MAMBASTRAP_* answers from the environment, so tests never write into the
// real home directory or pick up the developer's settings.
//
// The cleanup is handled by t.TempDir and t.Setenv.
func SetupTestEnv(t *testing.T) Env {
	t.Helper()

	tmpDir := t.TempDir()
	env := Env{
		Home:      filepath.Join(tmpDir, "home"),
		ConfigDir: filepath.Join(tmpDir, "config"),
	}

	t.Setenv("HOME", env.Home)
	t.Setenv("USERPROFILE", env.Home)

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "MAMBASTRAP_") {
			// t.Setenv records the old value for restore.
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}

	for _, dir := range []string{env.Home, env.ConfigDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("failed to create test directory %s: %v", dir, err)
		}
	}

	return env
}
