// Package artifact materializes a downloaded release artifact on disk.
//
// A Writer owns the destination file for the duration of one download:
// Open creates missing parent directories, truncate-creates the file and
// reopens it in append mode, Append streams bytes into it and reports
// progress, and Close releases the handle. Nothing is rolled back on
// failure; a partially written artifact stays where it is.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DirPerm is the permission used for created parent directories.
	DirPerm os.FileMode = 0o755
	// FilePerm is the permission used for the artifact itself.
	FilePerm os.FileMode = 0o755
)

// Writer is an append-only sink for a single artifact file.
type Writer struct {
	path     string
	file     *os.File
	written  int64
	reporter ProgressReporter
}

// Option configures a Writer.
type Option func(*Writer)

// WithReporter sets the progress reporter notified after every append.
func WithReporter(r ProgressReporter) Option {
	return func(w *Writer) {
		if r != nil {
			w.reporter = r
		}
	}
}

// Open prepares path for writing: parent directories are created as needed,
// any existing file is truncated, and the returned Writer appends to it.
// Callers must Close the Writer on every path.
func Open(path string, opts ...Option) (*Writer, error) {
	if path == "" {
		return nil, &DestinationUnwritableError{Path: path, Op: "validate path", Err: fmt.Errorf("path is empty")}
	}

	w := &Writer{path: path, reporter: discardReporter{}}
	for _, opt := range opts {
		opt(w)
	}

	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return nil, &DestinationUnwritableError{Path: path, Op: "create parent directory", Err: err}
	}

	// Create or truncate first so the file exists and is empty before the
	// first append.
	created, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, FilePerm)
	if err != nil {
		return nil, &DestinationUnwritableError{Path: path, Op: "create file", Err: err}
	}
	if err := created.Close(); err != nil {
		return nil, &DestinationUnwritableError{Path: path, Op: "close created file", Err: err}
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return nil, &DestinationUnwritableError{Path: path, Op: "open for append", Err: err}
	}
	w.file = file

	return w, nil
}

// Append writes all of p to the end of the file and reports the count.
// A short or failed write is an IOFailureError.
func (w *Writer) Append(p []byte) (int, error) {
	if w.file == nil {
		return 0, &IOFailureError{Path: w.path, Written: w.written, Err: os.ErrClosed}
	}

	n, err := w.file.Write(p)
	w.written += int64(n)
	if err != nil {
		return n, &IOFailureError{Path: w.path, Written: w.written, Err: err}
	}

	w.reporter.Received(n)
	return n, nil
}

// Write implements io.Writer in terms of Append.
func (w *Writer) Write(p []byte) (int, error) {
	return w.Append(p)
}

// Expect forwards the announced total size to the reporter when it cares.
// total is -1 when unknown.
func (w *Writer) Expect(total int64) {
	if s, ok := w.reporter.(SizedReporter); ok {
		s.Expect(total)
	}
}

// Close releases the file handle. It is safe to call more than once.
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	if f, ok := w.reporter.(FinishingReporter); ok {
		f.Finish()
	}
	if err != nil {
		return fmt.Errorf("close %s: %w", w.path, err)
	}
	return nil
}

// Written returns the number of bytes appended so far.
func (w *Writer) Written() int64 {
	return w.written
}

// SetExecutable marks the artifact as executable (rwxr-xr-x).
func SetExecutable(path string) error {
	if err := os.Chmod(path, FilePerm); err != nil {
		return fmt.Errorf("set executable: %w", err)
	}
	return nil
}
