package artifact

import "fmt"

// DestinationUnwritableError is returned when the destination directory or
// file cannot be created before any bytes are written.
type DestinationUnwritableError struct {
	Path string
	Op   string
	Err  error
}

func (e *DestinationUnwritableError) Error() string {
	return fmt.Sprintf("destination %s is not writable: %s: %v", e.Path, e.Op, e.Err)
}

func (e *DestinationUnwritableError) Unwrap() error {
	return e.Err
}

// IOFailureError is returned when appending to an open artifact fails.
// The download is aborted; whatever was written stays on disk.
type IOFailureError struct {
	Path    string
	Written int64
	Err     error
}

func (e *IOFailureError) Error() string {
	return fmt.Sprintf("write %s failed after %d bytes: %v", e.Path, e.Written, e.Err)
}

func (e *IOFailureError) Unwrap() error {
	return e.Err
}
