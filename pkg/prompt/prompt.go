package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vizioz/task-issues/pkg/task"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForBaseURL asks for the issue tracker base URL, proposing a default.
	PromptForBaseURL(defaultBaseURL string) (string, error)

	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptSelectTask lets the user pick one task from the list.
	PromptSelectTask(tasks []task.Task) (task.Task, error)
}

type realPrompt struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompt creates a new Prompt instance.
// Questions are written to stderr so stdout stays usable for piping.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stderr,
	}
}

// PromptForBaseURL asks for the issue tracker base URL, proposing a default.
func (p *realPrompt) PromptForBaseURL(defaultBaseURL string) (string, error) {
	fmt.Fprintf(p.out, "Base URL of the issue tracker "+
		"(ex: https://github.com/org/repo/issues/, https://gitlab.com/group/project/-/issues/) "+
		"[default: %s]: ", displayDefault(defaultBaseURL))

	input, err := p.readLine()
	if err != nil {
		return "", err
	}

	if input == "" {
		return defaultBaseURL, nil
	}

	return input, nil
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	defaultText := "[y/N]"
	if defaultYes {
		defaultText = "[Y/n]"
	}

	fmt.Fprintf(p.out, "%s %s: ", message, defaultText)

	input, err := p.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(input) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptSelectTask lets the user pick one task from the list.
func (p *realPrompt) PromptSelectTask(tasks []task.Task) (task.Task, error) {
	if len(tasks) == 0 {
		return task.Task{}, ErrNoChoices
	}

	return runTaskSelector(tasks, p.out)
}

func (p *realPrompt) readLine() (string, error) {
	input, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", fmt.Errorf("%w: %w", ErrInputFailed, err)
	}
	return strings.TrimSpace(input), nil
}

func displayDefault(value string) string {
	if value == "" {
		return "derived from the git remote"
	}
	return value
}
