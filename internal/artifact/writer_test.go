package artifact

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// recordingReporter records every progress notification.
type recordingReporter struct {
	counts   []int
	expected int64
	finished bool
}

func (r *recordingReporter) Received(n int)     { r.counts = append(r.counts, n) }
func (r *recordingReporter) Expect(total int64) { r.expected = total }
func (r *recordingReporter) Finish()            { r.finished = true }

func TestOpen_CreatesAncestorsAndEmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	dest := filepath.Join(tmpDir, "a", "b", "c", "micromamba")

	w, err := Open(dest)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer w.Close()

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatalf("destination should exist after Open: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("size = %d, want 0 before any append", info.Size())
	}
	if !info.Mode().IsRegular() {
		t.Errorf("mode = %v, want regular file", info.Mode())
	}

	for _, dir := range []string{"a", "a/b", "a/b/c"} {
		if fi, err := os.Stat(filepath.Join(tmpDir, dir)); err != nil || !fi.IsDir() {
			t.Errorf("ancestor %s missing: %v", dir, err)
		}
	}
}

func TestOpen_TruncatesExistingFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "micromamba")
	if err := os.WriteFile(dest, []byte("previous install"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Open(dest)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	content, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if len(content) != 0 {
		t.Errorf("content = %q, want empty after Open", content)
	}
}

func TestAppend_ConcatenatesInCallOrder(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "bin", "micromamba")
	reporter := &recordingReporter{}

	w, err := Open(dest, WithReporter(reporter))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	blocks := [][]byte{
		[]byte("first block;"),
		{},
		bytes.Repeat([]byte{0xAB}, 4096),
		[]byte("last"),
	}
	var want []byte
	for _, b := range blocks {
		n, err := w.Append(b)
		if err != nil {
			t.Fatalf("Append() error = %v", err)
		}
		if n != len(b) {
			t.Errorf("Append() = %d, want %d", n, len(b))
		}
		want = append(want, b...)
	}

	if w.Written() != int64(len(want)) {
		t.Errorf("Written() = %d, want %d", w.Written(), len(want))
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("file content mismatch: got %d bytes, want %d", len(got), len(want))
	}

	wantCounts := []int{12, 0, 4096, 4}
	if len(reporter.counts) != len(wantCounts) {
		t.Fatalf("progress notifications = %v, want %v", reporter.counts, wantCounts)
	}
	for i := range wantCounts {
		if reporter.counts[i] != wantCounts[i] {
			t.Errorf("notification %d = %d, want %d", i, reporter.counts[i], wantCounts[i])
		}
	}
	if !reporter.finished {
		t.Error("reporter should be finished after Close")
	}
}

func TestAppend_AfterClose(t *testing.T) {
	w, err := Open(filepath.Join(t.TempDir(), "micromamba"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	// Second close is a no-op
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	_, err = w.Append([]byte("late"))
	var ioErr *IOFailureError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Append() after Close error = %v, want *IOFailureError", err)
	}
	if !errors.Is(err, os.ErrClosed) {
		t.Errorf("error should wrap os.ErrClosed, got %v", err)
	}
}

func TestOpen_DestinationUnwritable(t *testing.T) {
	tmpDir := t.TempDir()

	// A regular file where a parent directory is expected
	blocker := filepath.Join(tmpDir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// A directory where the artifact file is expected
	dirAsFile := filepath.Join(tmpDir, "existing-dir")
	if err := os.Mkdir(dirAsFile, 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		path   string
		wantOp string
	}{
		{"empty path", "", "validate path"},
		{"parent is a file", filepath.Join(blocker, "sub", "micromamba"), "create parent directory"},
		{"destination is a directory", dirAsFile, "create file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Open(tt.path)
			if err == nil {
				w.Close()
				t.Fatal("expected error but got none")
			}
			var destErr *DestinationUnwritableError
			if !errors.As(err, &destErr) {
				t.Fatalf("error = %v, want *DestinationUnwritableError", err)
			}
			if destErr.Op != tt.wantOp {
				t.Errorf("Op = %q, want %q", destErr.Op, tt.wantOp)
			}
		})
	}
}

func TestOpen_ReadOnlyParent(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	parent := filepath.Join(t.TempDir(), "readonly")
	if err := os.Mkdir(parent, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(parent, 0o755) })

	_, err := Open(filepath.Join(parent, "nested", "micromamba"))
	var destErr *DestinationUnwritableError
	if !errors.As(err, &destErr) {
		t.Fatalf("error = %v, want *DestinationUnwritableError", err)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Errorf("error should wrap a permission error, got %v", err)
	}
}

func TestWriter_Expect(t *testing.T) {
	reporter := &recordingReporter{}
	w, err := Open(filepath.Join(t.TempDir(), "micromamba"), WithReporter(reporter))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer w.Close()

	w.Expect(1234)
	if reporter.expected != 1234 {
		t.Errorf("reporter expected = %d, want 1234", reporter.expected)
	}
}

func TestSetExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit is not meaningful on windows")
	}

	dest := filepath.Join(t.TempDir(), "micromamba")
	if err := os.WriteFile(dest, []byte("#!/bin/sh\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := SetExecutable(dest); err != nil {
		t.Fatalf("SetExecutable() error = %v", err)
	}

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		t.Errorf("mode = %v, want executable", info.Mode().Perm())
	}

	if err := SetExecutable(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("SetExecutable() on a missing file should fail")
	}
}
