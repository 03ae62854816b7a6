package util

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNoTerminal is returned when secure input is requested but stdin is not
// attached to a terminal
var ErrNoTerminal = errors.New("not attached to a terminal")

// TerminalReader solicits non-echoed input. Injectable so callers can test
// secure options without a real terminal.
type TerminalReader interface {
	IsTerminal() bool
	ReadSecure(prompt string) (string, error)
}

// StdinTerminal reads from the process's stdin, prompting on stderr
type StdinTerminal struct{}

// IsTerminal reports whether stdin is attached to a terminal
func (StdinTerminal) IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ReadSecure prints the prompt and reads a line without echoing it
func (StdinTerminal) ReadSecure(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNoTerminal
	}

	fmt.Fprint(os.Stderr, prompt)
	bytes, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}
