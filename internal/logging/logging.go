// Package logging captures the standard logger's output so the console can
// show it in its Logs tab.
package logging

import (
	"bytes"
	"io"
	"log"
	"slices"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultCapacity is the number of lines a Buffer keeps
const DefaultCapacity = 500

// Buffer is an io.Writer that keeps the last lines written to it
type Buffer struct {
	mu       sync.Mutex
	lines    []string
	partial  []byte
	capacity int
}

// NewBuffer returns a buffer holding at most capacity lines
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{capacity: capacity}
}

// Write implements io.Writer. Incomplete lines are held until their newline
// arrives.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data := append(b.partial, p...)
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		b.lines = append(b.lines, string(data[:i]))
		data = data[i+1:]
	}
	b.partial = slices.Clone(data)

	if over := len(b.lines) - b.capacity; over > 0 {
		b.lines = slices.Delete(b.lines, 0, over)
	}
	return len(p), nil
}

// Lines returns the captured lines, oldest first
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.lines)
}

// Len returns the number of complete lines held
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

// Setup routes the standard logger into buf. With debug set, output is also
// appended to debugFile. The returned closer releases the file.
func Setup(buf *Buffer, debug bool, debugFile string) (io.Closer, error) {
	log.SetFlags(log.Ltime)
	if !debug {
		log.SetOutput(buf)
		return nopCloser{}, nil
	}

	f, err := tea.LogToFile(debugFile, "debug")
	if err != nil {
		log.SetOutput(buf)
		return nopCloser{}, err
	}
	log.SetOutput(io.MultiWriter(f, buf))
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
