package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ZebulonRouseFrantzich/mambastrap/internal/platform"
)

// PromptCollector asks the questions as plain lines on out and reads one
// answer line per question from in. End of input counts as an empty answer.
type PromptCollector struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptCollector creates a line-oriented collector. Nil streams default
// to stdin and stdout.
func NewPromptCollector(in io.Reader, out io.Writer) *PromptCollector {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &PromptCollector{in: bufio.NewReader(in), out: out}
}

func (c *PromptCollector) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// RootPrefix implements Collector.
func (c *PromptCollector) RootPrefix() (string, error) {
	answer, err := c.ask(fmt.Sprintf("Root prefix [%s]: ", DefaultRootPrefix))
	if err != nil {
		return "", err
	}
	return ParseRootPrefix(answer), nil
}

// InitShell implements Collector.
func (c *PromptCollector) InitShell() (bool, error) {
	answer, err := c.ask("Initialize a shell? [Y/n]: ")
	if err != nil {
		return false, err
	}
	return ParseInitShell(answer)
}

// AskForShell implements Collector.
func (c *PromptCollector) AskForShell() (string, error) {
	answer, err := c.ask(fmt.Sprintf("Shell (%s): ", shellChoices()))
	if err != nil {
		return "", err
	}
	return ParseShell(answer)
}

// BinPath implements Collector.
func (c *PromptCollector) BinPath(p platform.Platform) (string, error) {
	answer, err := c.ask(fmt.Sprintf("Binary path [%s]: ", DefaultBinPath(p)))
	if err != nil {
		return "", err
	}
	return ParseBinPath(answer, p), nil
}
