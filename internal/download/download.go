// Package download streams a release artifact over HTTP into a Sink.
//
// A Downloader makes exactly one GET per Fetch, follows redirects, hands
// each received chunk to the sink as it arrives and only then inspects the
// final status code. There are no retries and no client timeout; the
// transport's own defaults apply.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ZebulonRouseFrantzich/mambastrap/internal/logger"
)

const (
	// MaxRedirects caps the redirect chain.
	MaxRedirects = 10
	// ChunkSize is the read buffer size used while streaming.
	ChunkSize = 32 * 1024
)

// Downloader performs single-attempt streaming downloads.
type Downloader struct {
	client    *http.Client
	logger    logger.Logger
	chunkSize int
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithClient replaces the HTTP client. Its CheckRedirect policy is kept as is.
func WithClient(c *http.Client) Option {
	return func(d *Downloader) {
		if c != nil {
			d.client = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(d *Downloader) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithChunkSize sets the read buffer size.
func WithChunkSize(n int) Option {
	return func(d *Downloader) {
		if n > 0 {
			d.chunkSize = n
		}
	}
}

// NewDownloader creates a downloader that follows up to MaxRedirects redirects.
func NewDownloader(opts ...Option) *Downloader {
	d := &Downloader{
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= MaxRedirects {
					return fmt.Errorf("stopped after %d redirects", MaxRedirects)
				}
				return nil
			},
		},
		logger:    logger.Nop(),
		chunkSize: ChunkSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Fetch downloads url into sink.
//
// The body is streamed whatever the status, so a failed download leaves the
// bytes the server sent on disk. A final status other than 200 returns the
// Outcome together with a *BadResponseStatusError. Network failures return
// a *TransportError; sink failures are returned unchanged.
func (d *Downloader) Fetch(ctx context.Context, url string, sink Sink) (Outcome, error) {
	d.logger.Info("sending request", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Outcome{}, &TransportError{URL: url, Err: err}
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return Outcome{}, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	outcome := Outcome{Status: resp.StatusCode, FinalURL: resp.Request.URL.String()}
	d.logger.Debug("response received",
		"status", resp.StatusCode,
		"final_url", outcome.FinalURL,
		"content_length", resp.ContentLength,
	)

	if s, ok := sink.(sizeExpecter); ok {
		s.Expect(resp.ContentLength)
	}

	outcome.Written, err = d.stream(resp.Body, sink)
	if err != nil {
		var sinkErr *sinkError
		if errors.As(err, &sinkErr) {
			return outcome, sinkErr.err
		}
		return outcome, &TransportError{URL: url, Err: err}
	}

	d.logger.Info("transfer complete", "status", outcome.Status, "bytes", outcome.Written)

	if !outcome.Success() {
		return outcome, &BadResponseStatusError{URL: url, Code: outcome.Status}
	}
	return outcome, nil
}

// sinkError marks failures that came from the sink rather than the body.
type sinkError struct {
	err error
}

func (e *sinkError) Error() string { return e.err.Error() }

// stream forwards body to sink one chunk at a time.
func (d *Downloader) stream(body io.Reader, sink Sink) (int64, error) {
	buf := make([]byte, d.chunkSize)
	var written int64

	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			m, err := sink.Append(buf[:n])
			written += int64(m)
			if err != nil {
				return written, &sinkError{err: err}
			}
			if m != n {
				return written, &sinkError{err: io.ErrShortWrite}
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}
