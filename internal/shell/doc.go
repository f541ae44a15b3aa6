// Package shell hands shell integration off to the freshly installed
// micromamba binary.
//
// The installer never edits rc files itself. When the user asked for shell
// integration it runs
//
//	<exe_path> shell init --prefix <root_prefix> --shell <shell>
//
// waits for it and reports the exit status. A non-zero exit is reported but
// does not undo the download; failing to start the process is an error.
//
// # Shell Detection
//
// DetectShell suggests a default shell name when the user gives none:
//  1. $SHELL environment variable (most reliable on Unix)
//  2. Parent process executable via gopsutil (covers Windows shells)
//
// The advisory shell set (bash, cmd.exe, dash, fish, posix, powershell,
// tcsh, xonsh, zsh) is what micromamba understands; names outside it are
// passed through unvalidated.
package shell
