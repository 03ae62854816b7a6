package icicle

import (
	"fmt"
	"strings"
)

// MissingOptionError reports the first required option of the matched command
// which was not satisfied. It unwraps to ErrMissingOption.
type MissingOptionError struct {
	Option *Option
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingOption, strings.Join(e.Option.Names, ", "))
}

func (e *MissingOptionError) Unwrap() error {
	return ErrMissingOption
}

// MissingArgumentError reports the range of declared positional arguments of
// the matched command which were not satisfied. Start and End are indices
// into the command's argument declarations, End inclusive. It unwraps to
// ErrMissingArgument.
type MissingArgumentError struct {
	Start   int
	End     int
	Command *Command
}

func (e *MissingArgumentError) Error() string {
	if e.Start == e.End {
		return fmt.Sprintf("%s: #%d", ErrMissingArgument, e.Start)
	}

	return fmt.Sprintf("%s: #%d to #%d", ErrMissingArgument, e.Start, e.End)
}

func (e *MissingArgumentError) Unwrap() error {
	return ErrMissingArgument
}
