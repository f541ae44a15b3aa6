package testutil_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZebulonRouseFrantzich/mambastrap/internal/testutil"
)

func TestSetupTestEnv(t *testing.T) {
	t.Setenv("MAMBASTRAP_ROOT_PREFIX", "/should/be/cleared")

	env := testutil.SetupTestEnv(t)

	if got := os.Getenv("HOME"); got != env.Home {
		t.Errorf("HOME = %q, want %q", got, env.Home)
	}
	if _, ok := os.LookupEnv("MAMBASTRAP_ROOT_PREFIX"); ok {
		t.Error("MAMBASTRAP_ROOT_PREFIX should be unset")
	}
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "MAMBASTRAP_") {
			t.Errorf("unexpected variable left in environment: %s", kv)
		}
	}

	for _, dir := range []string{env.Home, env.ConfigDir} {
		if !filepath.IsAbs(dir) {
			t.Errorf("path %s is not absolute", dir)
		}
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			t.Errorf("directory %s does not exist", dir)
		}
	}

	if !strings.HasPrefix(env.ConfigDir, filepath.Dir(env.Home)) {
		t.Errorf("ConfigDir %s and Home %s should share a temp root", env.ConfigDir, env.Home)
	}
}

func TestSetupTestEnv_Isolation(t *testing.T) {
	env1 := testutil.SetupTestEnv(t)

	t.Run("subtest", func(t *testing.T) {
		env2 := testutil.SetupTestEnv(t)
		if env1.Home == env2.Home {
			t.Error("expected different temp directories for different test contexts")
		}
	})
}
