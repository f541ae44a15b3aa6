package shell

import (
	"errors"
	"fmt"
)

// ShellType names a shell micromamba can initialize.
type ShellType string

const (
	ShellBash       ShellType = "bash"
	ShellCmd        ShellType = "cmd.exe"
	ShellDash       ShellType = "dash"
	ShellFish       ShellType = "fish"
	ShellPosix      ShellType = "posix"
	ShellPowershell ShellType = "powershell"
	ShellTcsh       ShellType = "tcsh"
	ShellXonsh      ShellType = "xonsh"
	ShellZsh        ShellType = "zsh"
	// ShellUnknown represents an unknown or undetected shell
	ShellUnknown ShellType = "unknown"
)

// String returns the string representation of the shell type
func (s ShellType) String() string {
	return string(s)
}

// IsKnown returns true if the shell is in the advisory set.
func (s ShellType) IsKnown() bool {
	for _, known := range SupportedShells() {
		if s == known {
			return true
		}
	}
	return false
}

// SupportedShells returns the advisory shell set in display order.
func SupportedShells() []ShellType {
	return []ShellType{
		ShellBash, ShellCmd, ShellDash, ShellFish, ShellPosix,
		ShellPowershell, ShellTcsh, ShellXonsh, ShellZsh,
	}
}

// DetectionResult contains the result of shell detection
type DetectionResult struct {
	// Shell is the detected shell type
	Shell ShellType
	// Method describes how the shell was detected
	Method string
	// ShellPath is the filesystem path to the shell binary
	ShellPath string
	// Confidence is the confidence level (high, medium, none)
	Confidence string
}

// ExitStatus is the exit status of the shell-init child process.
type ExitStatus struct {
	Code int
}

// Success reports whether the child exited with status 0.
func (s ExitStatus) Success() bool {
	return s.Code == 0
}

// Err returns a *NonZeroExitError for a failed child, nil otherwise.
func (s ExitStatus) Err() error {
	if s.Success() {
		return nil
	}
	return &NonZeroExitError{Code: s.Code}
}

func (s ExitStatus) String() string {
	return fmt.Sprintf("exit status %d", s.Code)
}

// ErrShellRequired is returned when shell-init is attempted without a shell.
// It signals a caller bug, not bad user input.
var ErrShellRequired = errors.New("shell init requires a shell name")

// ProcessSpawnError is returned when the shell-init process cannot be started.
type ProcessSpawnError struct {
	Path string
	Err  error
}

func (e *ProcessSpawnError) Error() string {
	return fmt.Sprintf("start %s: %v", e.Path, e.Err)
}

func (e *ProcessSpawnError) Unwrap() error {
	return e.Err
}

// NonZeroExitError reports a shell-init process that exited unsuccessfully.
type NonZeroExitError struct {
	Code int
}

func (e *NonZeroExitError) Error() string {
	return fmt.Sprintf("shell init exited with status %d", e.Code)
}
