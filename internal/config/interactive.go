package config

import (
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/ZebulonRouseFrantzich/mambastrap/internal/platform"
)

// promptUIRunner is a variable for testing purposes to allow mocking prompt.Run()
var promptUIRunner = func(prompt promptui.Prompt) (string, error) {
	return prompt.Run()
}

// InteractiveCollector asks the questions with promptui. Use it when stdin
// is a terminal.
type InteractiveCollector struct{}

// NewInteractiveCollector creates a promptui backed collector.
func NewInteractiveCollector() *InteractiveCollector {
	return &InteractiveCollector{}
}

func runPrompt(prompt promptui.Prompt) (string, error) {
	answer, err := promptUIRunner(prompt)
	if err != nil {
		return "", fmt.Errorf("prompt %q: %w", prompt.Label, err)
	}
	return answer, nil
}

// RootPrefix implements Collector.
func (*InteractiveCollector) RootPrefix() (string, error) {
	answer, err := runPrompt(promptui.Prompt{
		Label:     "Root prefix",
		Default:   DefaultRootPrefix,
		AllowEdit: true,
	})
	if err != nil {
		return "", err
	}
	return ParseRootPrefix(answer), nil
}

// InitShell implements Collector.
func (*InteractiveCollector) InitShell() (bool, error) {
	answer, err := runPrompt(promptui.Prompt{
		Label: "Initialize a shell [Y/n]",
		Validate: func(input string) error {
			_, err := ParseInitShell(input)
			return err
		},
	})
	if err != nil {
		return false, err
	}
	return ParseInitShell(answer)
}

// AskForShell implements Collector.
func (*InteractiveCollector) AskForShell() (string, error) {
	answer, err := runPrompt(promptui.Prompt{
		Label:   fmt.Sprintf("Shell (%s)", shellChoices()),
		Default: detectShell(),
	})
	if err != nil {
		return "", err
	}
	return ParseShell(answer)
}

// BinPath implements Collector.
func (*InteractiveCollector) BinPath(p platform.Platform) (string, error) {
	answer, err := runPrompt(promptui.Prompt{
		Label:     "Binary path",
		Default:   DefaultBinPath(p),
		AllowEdit: true,
	})
	if err != nil {
		return "", err
	}
	return ParseBinPath(answer, p), nil
}
