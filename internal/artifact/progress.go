package artifact

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// ProgressReporter is notified after each successful append with the number
// of bytes just written. It is advisory only.
type ProgressReporter interface {
	Received(n int)
}

// SizedReporter is a ProgressReporter that wants the expected total size.
type SizedReporter interface {
	ProgressReporter
	Expect(total int64)
}

// FinishingReporter is a ProgressReporter that renders a final state when
// the writer closes.
type FinishingReporter interface {
	ProgressReporter
	Finish()
}

type discardReporter struct{}

func (discardReporter) Received(int) {}

// LineReporter prints one "Received N bytes." line per append.
type LineReporter struct {
	out io.Writer
}

// NewLineReporter creates a line reporter writing to out.
func NewLineReporter(out io.Writer) *LineReporter {
	return &LineReporter{out: out}
}

// Received implements ProgressReporter.
func (r *LineReporter) Received(n int) {
	fmt.Fprintf(r.out, "Received %d bytes.\n", n)
}

// BarReporter renders a byte progress bar.
type BarReporter struct {
	out         io.Writer
	description string
	bar         *progressbar.ProgressBar
}

// NewBarReporter creates a bar reporter writing to out. The bar is created
// lazily so the total announced by Expect can size it.
func NewBarReporter(out io.Writer, description string) *BarReporter {
	return &BarReporter{out: out, description: description}
}

// Expect implements SizedReporter. A negative total renders a spinner.
func (r *BarReporter) Expect(total int64) {
	r.bar = progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(r.out),
		progressbar.OptionSetDescription(r.description),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(r.out)
		}),
	)
}

// Received implements ProgressReporter.
func (r *BarReporter) Received(n int) {
	if r.bar == nil {
		r.Expect(-1)
	}
	_ = r.bar.Add(n)
}

// Finish implements FinishingReporter.
func (r *BarReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// NewReporter picks a bar for terminals and plain lines otherwise.
func NewReporter(out io.Writer, description string) ProgressReporter {
	if isTerminal(out) {
		return NewBarReporter(out, description)
	}
	return NewLineReporter(out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
