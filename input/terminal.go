package input

import (
	"io"

	"golang.org/x/term"
)

// Terminal interface for terminal detection
type Terminal interface {
	IsTerminal(fd int) bool
}

// DefaultTerminal implements real terminal operations
type DefaultTerminal struct{}

// IsTerminal checks if fd refers to a real terminal
func (t *DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

type fileDescriptor interface {
	Fd() uintptr
}

// IsTerminalWriter reports whether w is backed by a file descriptor attached to a terminal.
// Writers which expose no descriptor (buffers, pipes wrapped in other writers) never are.
func IsTerminalWriter(w io.Writer, terminal Terminal) bool {
	if terminal == nil {
		terminal = &DefaultTerminal{}
	}

	f, ok := w.(fileDescriptor)
	if !ok {
		return false
	}

	return terminal.IsTerminal(int(f.Fd()))
}
