package input

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// MockTerminal for testing
type MockTerminal struct {
	IsTerminalResult bool
	Fds              []int
}

func (m *MockTerminal) IsTerminal(fd int) bool {
	m.Fds = append(m.Fds, fd)
	return m.IsTerminalResult
}

func TestIsTerminalWriter(t *testing.T) {
	tests := []struct {
		name     string
		writer   func(t *testing.T) *os.File
		terminal bool
		want     bool
	}{
		{
			name:     "file reported as terminal",
			writer:   func(t *testing.T) *os.File { return os.Stdout },
			terminal: true,
			want:     true,
		},
		{
			name:     "file not reported as terminal",
			writer:   func(t *testing.T) *os.File { return os.Stderr },
			terminal: false,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockTerminal{IsTerminalResult: tt.terminal}
			f := tt.writer(t)
			assert.Equal(t, tt.want, IsTerminalWriter(f, mock))
			assert.Equal(t, []int{int(f.Fd())}, mock.Fds)
		})
	}
}

func TestIsTerminalWriter_NoDescriptor(t *testing.T) {
	mock := &MockTerminal{IsTerminalResult: true}
	assert.False(t, IsTerminalWriter(&bytes.Buffer{}, mock))
	assert.Empty(t, mock.Fds, "the terminal should not be queried for writers without a descriptor")
}

func TestDefaultTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	assert.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminalWriter(f, nil), "a regular file is never a terminal")
}
