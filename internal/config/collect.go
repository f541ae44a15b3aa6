package config

import (
	"fmt"

	"github.com/mitchellh/go-homedir"

	"github.com/ZebulonRouseFrantzich/mambastrap/internal/platform"
)

// Collector answers the installation questions. Collect calls the methods
// in declaration order and only calls AskForShell when InitShell is true.
type Collector interface {
	RootPrefix() (string, error)
	InitShell() (bool, error)
	AskForShell() (string, error)
	BinPath(p platform.Platform) (string, error)
}

// Collect asks c the installation questions and builds the Configuration.
// Paths starting with "~" are expanded against the home directory.
func Collect(c Collector, p platform.Platform) (*Configuration, error) {
	rootPrefix, err := c.RootPrefix()
	if err != nil {
		return nil, fmt.Errorf("collect root prefix: %w", err)
	}

	initShell, err := c.InitShell()
	if err != nil {
		return nil, fmt.Errorf("collect init shell: %w", err)
	}

	mode := NoInit()
	if initShell {
		name, err := c.AskForShell()
		if err != nil {
			return nil, fmt.Errorf("collect shell: %w", err)
		}
		mode = InitWith(name)
	}

	binPath, err := c.BinPath(p)
	if err != nil {
		return nil, fmt.Errorf("collect binary path: %w", err)
	}

	rootPrefix, err = expandPath(rootPrefix, QuestionRootPrefix)
	if err != nil {
		return nil, err
	}
	binPath, err = expandPath(binPath, QuestionBinPath)
	if err != nil {
		return nil, err
	}

	return &Configuration{
		ExePath:    binPath,
		RootPrefix: rootPrefix,
		Shell:      mode,
	}, nil
}

func expandPath(p, question string) (string, error) {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", fmt.Errorf("expand %s %q: %w", question, p, err)
	}
	return expanded, nil
}
