package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/ZebulonRouseFrantzich/mambastrap/internal/logger"
)

// Runner starts a process, waits for it and returns its exit code.
// The error is reserved for processes that could not be started.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (int, error)
}

// ExecRunner runs commands with os/exec, wiring stdio to the given streams.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner that inherits the installer's stdio.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Start(); err != nil {
		return -1, err
	}

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// Initiator runs the downloaded binary's shell-init subcommand.
type Initiator struct {
	runner Runner
	out    io.Writer
	logger logger.Logger
}

// NewInitiator creates an initiator. out receives the echo of the command
// line; nil values fall back to os/exec, stdout and a no-op logger.
func NewInitiator(runner Runner, out io.Writer, l logger.Logger) *Initiator {
	if runner == nil {
		runner = NewExecRunner()
	}
	if out == nil {
		out = os.Stdout
	}
	if l == nil {
		l = logger.Nop()
	}
	return &Initiator{runner: runner, out: out, logger: l}
}

// Args returns the fixed shell-init argument list.
func Args(rootPrefix, shell string) []string {
	return []string{"shell", "init", "--prefix", rootPrefix, "--shell", shell}
}

// Run invokes exePath with Args(rootPrefix, *shell) and waits for it.
//
// A nil shell is a caller bug and returns ErrShellRequired without spawning
// anything. A process that cannot be started yields *ProcessSpawnError.
// A non-zero exit is returned as the ExitStatus with a nil error.
func (i *Initiator) Run(ctx context.Context, exePath, rootPrefix string, shell *string) (ExitStatus, error) {
	if shell == nil {
		return ExitStatus{}, ErrShellRequired
	}

	args := Args(rootPrefix, *shell)
	fmt.Fprintf(i.out, "Running %s %s\n", exePath, strings.Join(args, " "))
	i.logger.Debug("starting shell init", "exe", exePath, "args", args)

	code, err := i.runner.Run(ctx, exePath, args...)
	if err != nil {
		return ExitStatus{}, &ProcessSpawnError{Path: exePath, Err: err}
	}

	status := ExitStatus{Code: code}
	if !status.Success() {
		i.logger.Warn("shell init failed", "exe", exePath, "shell", *shell, "code", code)
		fmt.Fprintf(i.out, "Shell initialization exited with %s\n", status)
	} else {
		fmt.Fprintf(i.out, "Shell initialization for %s finished\n", *shell)
	}

	return status, nil
}
