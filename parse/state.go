// Package parse holds the low-level token stream primitives used by the
// resolver: a cursor over an argument list and shell-style splitting.
package parse

import "errors"

// ErrInvalidPosition is returned when an out-of-range position is accessed
var ErrInvalidPosition = errors.New("invalid position")

// State is a cursor over an argument list
type State interface {
	Pos() int                      // Get the current position
	SetPos(pos int)                // Set the current position
	Args() []string                // Get the entire argument list
	CurrentArg() string            // Get the current argument
	ArgAt(pos int) (string, error) // Get the argument at a specific position
	Peek() string                  // Peek at the next argument
	Advance() bool                 // Advance to the next argument
	Len() int                      // Get the length of the argument list
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State over the given argument list, positioned
// before the first argument
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position in the argument list
func (s *DefaultState) Pos() int {
	return s.pos
}

// SetPos sets the current position in the argument list
func (s *DefaultState) SetPos(pos int) {
	s.pos = pos
}

// Args returns the entire argument list
func (s *DefaultState) Args() []string {
	return s.args
}

// CurrentArg returns the current argument or an empty string when the cursor
// is out of range
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}

	return s.args[s.pos]
}

// ArgAt returns the argument at a specific position
func (s *DefaultState) ArgAt(pos int) (string, error) {
	if pos < 0 || pos >= len(s.args) {
		return "", ErrInvalidPosition
	}

	return s.args[pos], nil
}

// Peek returns the next argument without advancing the cursor
func (s *DefaultState) Peek() string {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1]
	}

	return ""
}

// Advance moves to the next argument, returning false once the list is
// exhausted
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}

	return false
}

// Len returns the length of the argument list
func (s *DefaultState) Len() int {
	return len(s.args)
}
