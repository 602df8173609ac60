// Package parse provides the argument cursor used while classifying command-line
// arguments and shell-like splitting of argument strings.
package parse

// State represents the current position of the argument scanner
type State interface {
	Pos() int           // Get the current position
	Args() []string     // Get the entire argument list
	CurrentArg() string // Get the current argument
	Advance() bool      // Advance to the next argument
	Len() int           // Gets the length of the argument list
	Remaining() int     // Number of arguments after the current one
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State positioned before the first argument
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

// Args returns the entire argument list
func (s *DefaultState) Args() []string {
	return s.args
}

// CurrentArg returns the current argument
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// Advance advances to the next argument, returning true if successful
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

// Remaining returns how many arguments follow the current one
func (s *DefaultState) Remaining() int {
	if s.pos < 0 {
		return len(s.args)
	}
	return len(s.args) - s.pos - 1
}
