package config

import (
	"context"
	"strings"

	"github.com/ZebulonRouseFrantzich/mambastrap/internal/platform"
	"github.com/ZebulonRouseFrantzich/mambastrap/internal/shell"
)

// Question names used in InvalidAnswerError.
const (
	QuestionRootPrefix = "root prefix"
	QuestionInitShell  = "init shell"
	QuestionShell      = "shell"
	QuestionBinPath    = "binary path"
)

// detectShell is a variable so tests can control the fallback shell.
var detectShell = func() string {
	result, err := shell.DetectShell(context.Background())
	if err != nil || !result.Shell.IsKnown() {
		return ""
	}
	return result.Shell.String()
}

// ParseRootPrefix returns the trimmed answer or DefaultRootPrefix if empty.
func ParseRootPrefix(answer string) string {
	if answer = strings.TrimSpace(answer); answer == "" {
		return DefaultRootPrefix
	}
	return answer
}

// ParseInitShell interprets a yes/no answer. Empty means yes.
func ParseInitShell(answer string) (bool, error) {
	switch strings.TrimSpace(answer) {
	case "", "y", "Y", "yes":
		return true, nil
	case "n", "N", "no":
		return false, nil
	default:
		return false, &InvalidAnswerError{Question: QuestionInitShell, Answer: answer}
	}
}

// ParseShell returns the trimmed shell name. It is not checked against
// shell.SupportedShells. An empty answer falls back to the detected shell.
func ParseShell(answer string) (string, error) {
	if answer = strings.TrimSpace(answer); answer != "" {
		return answer, nil
	}
	if detected := detectShell(); detected != "" {
		return detected, nil
	}
	return "", &InvalidAnswerError{Question: QuestionShell, Answer: answer}
}

// ParseBinPath returns the trimmed answer or the platform default if empty.
func ParseBinPath(answer string, p platform.Platform) string {
	if answer = strings.TrimSpace(answer); answer != "" {
		return answer
	}
	return DefaultBinPath(p)
}

// DefaultBinPath returns the default binary location for p.
func DefaultBinPath(p platform.Platform) string {
	if p == platform.Windows {
		return DefaultWindowsBinPath
	}
	return DefaultUnixBinPath
}

// shellChoices is the advisory shell list shown to the user.
func shellChoices() string {
	names := make([]string, 0, len(shell.SupportedShells()))
	for _, s := range shell.SupportedShells() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
