package shell

import (
	"context"
	"os"
	"path"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// shellAliases maps executable base names to shell types.
var shellAliases = map[string]ShellType{
	"bash":           ShellBash,
	"cmd":            ShellCmd,
	"cmd.exe":        ShellCmd,
	"dash":           ShellDash,
	"fish":           ShellFish,
	"sh":             ShellPosix,
	"powershell":     ShellPowershell,
	"powershell.exe": ShellPowershell,
	"pwsh":           ShellPowershell,
	"pwsh.exe":       ShellPowershell,
	"tcsh":           ShellTcsh,
	"csh":            ShellTcsh,
	"xonsh":          ShellXonsh,
	"zsh":            ShellZsh,
	"bash.exe":       ShellBash,
}

// DetectShell detects the user's shell using $SHELL, then the parent process.
func DetectShell(ctx context.Context) (*DetectionResult, error) {
	return detectShell(ctx, os.Getenv, detectFromParentProcess)
}

func detectShell(
	ctx context.Context,
	getenv func(string) string,
	parent func(context.Context) (ShellType, string),
) (*DetectionResult, error) {
	if shell := getenv("SHELL"); shell != "" {
		if shellType := ParseShellFromPath(shell); shellType.IsKnown() {
			return &DetectionResult{
				Shell:      shellType,
				Method:     "$SHELL environment variable",
				ShellPath:  shell,
				Confidence: "high",
			}, nil
		}
	}

	if shellType, shellPath := parent(ctx); shellType.IsKnown() {
		return &DetectionResult{
			Shell:      shellType,
			Method:     "parent process",
			ShellPath:  shellPath,
			Confidence: "medium",
		}, nil
	}

	return &DetectionResult{
		Shell:      ShellUnknown,
		Method:     "detection failed",
		Confidence: "none",
	}, nil
}

// ParseShellFromPath extracts the shell type from a shell binary path.
// Examples:
//   - /bin/bash -> bash
//   - C:\Windows\System32\WindowsPowerShell\v1.0\powershell.exe -> powershell
//   - /usr/local/bin/fish -> fish
func ParseShellFromPath(shellPath string) ShellType {
	// Windows paths are split on either separator regardless of host OS.
	baseName := strings.ToLower(path.Base(strings.ReplaceAll(shellPath, `\`, "/")))

	if shellType, ok := shellAliases[baseName]; ok {
		return shellType
	}
	return ShellUnknown
}

// detectFromParentProcess asks gopsutil for the executable of the process
// that started the installer.
func detectFromParentProcess(ctx context.Context) (ShellType, string) {
	parent, err := process.NewProcessWithContext(ctx, int32(os.Getppid()))
	if err != nil {
		return ShellUnknown, ""
	}

	if exe, err := parent.ExeWithContext(ctx); err == nil && exe != "" {
		if shellType := ParseShellFromPath(exe); shellType.IsKnown() {
			return shellType, exe
		}
	}

	name, err := parent.NameWithContext(ctx)
	if err != nil {
		return ShellUnknown, ""
	}
	return ParseShellFromPath(name), name
}
