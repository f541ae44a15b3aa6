package download

import (
	"fmt"
	"net/http"
)

// Sink receives the response body chunk by chunk.
// artifact.Writer is the production implementation.
type Sink interface {
	Append(p []byte) (int, error)
}

// sizeExpecter is implemented by sinks that want the announced body size.
type sizeExpecter interface {
	Expect(total int64)
}

// Outcome describes a finished transfer. Only a final status of exactly 200
// is a success; any other status is a failure no matter how many bytes were
// written.
type Outcome struct {
	Status   int    // final HTTP status after redirects
	Written  int64  // bytes handed to the sink
	FinalURL string // URL of the last request in the redirect chain
}

// Success reports whether the final status was 200.
func (o Outcome) Success() bool {
	return o.Status == http.StatusOK
}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if o.Success() {
		return fmt.Sprintf("success (%d bytes)", o.Written)
	}
	return fmt.Sprintf("failure (HTTP %d, %d bytes)", o.Status, o.Written)
}

// TransportError wraps network-level failures: DNS, connection, TLS,
// redirect loops and interrupted bodies.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// BadResponseStatusError is returned when the final status is not 200.
type BadResponseStatusError struct {
	URL  string
	Code int
}

func (e *BadResponseStatusError) Error() string {
	return fmt.Sprintf("download %s failed with HTTP status %d", e.URL, e.Code)
}
