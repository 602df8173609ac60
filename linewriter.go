package argparser

import (
	"io"
	"sync"
)

// LineWriter receives diagnostic lines. Implementations must deliver every line
// immediately so that diagnostics interleave correctly with other program output.
type LineWriter interface {
	WriteLine(line string) error
}

type flusher interface {
	Flush() error
}

// writerLines is the default LineWriter on top of an io.Writer
type writerLines struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLineWriter returns a LineWriter which writes each line followed by a newline to w,
// flushing w after every line when it supports Flush (bufio.Writer for instance).
func NewLineWriter(w io.Writer) LineWriter {
	return &writerLines{w: w}
}

// WriteLine writes line and a trailing newline as a single write
func (l *writerLines) WriteLine(line string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := io.WriteString(l.w, line+"\n"); err != nil {
		return err
	}
	if f, ok := l.w.(flusher); ok {
		return f.Flush()
	}

	return nil
}
