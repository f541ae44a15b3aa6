package config

import "fmt"

// Default answers.
const (
	DefaultRootPrefix     = "~/micromamba/"
	DefaultWindowsBinPath = "~/micromamba/micromamba.exe"
	DefaultUnixBinPath    = "~/.local/bin/micromamba"
)

// ShellMode records whether shell initialization was requested and, if so,
// for which shell. The zero value is NoInit.
type ShellMode struct {
	init  bool
	shell string
}

// NoInit skips shell initialization.
func NoInit() ShellMode {
	return ShellMode{}
}

// InitWith requests shell initialization for the named shell.
func InitWith(shell string) ShellMode {
	return ShellMode{init: true, shell: shell}
}

// InitShell reports whether shell initialization was requested.
func (m ShellMode) InitShell() bool {
	return m.init
}

// Name returns the shell to initialize, or nil for NoInit.
func (m ShellMode) Name() *string {
	if !m.init {
		return nil
	}
	s := m.shell
	return &s
}

func (m ShellMode) String() string {
	if !m.init {
		return "no shell init"
	}
	return "init " + m.shell
}

// Configuration is the result of collecting answers. It is built once by
// Collect and only read afterwards.
type Configuration struct {
	// ExePath is where the downloaded binary is written.
	ExePath string
	// RootPrefix is passed to shell init as --prefix.
	RootPrefix string
	// Shell selects optional shell initialization.
	Shell ShellMode
}

// InitShell reports whether shell initialization was requested.
func (c *Configuration) InitShell() bool {
	return c.Shell.InitShell()
}

// InvalidAnswerError is returned for an answer that cannot be interpreted.
type InvalidAnswerError struct {
	Question string
	Answer   string
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("invalid answer %q for %s", e.Answer, e.Question)
}
