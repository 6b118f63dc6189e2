package adapter

import (
	"io"
	"sync"

	m "github.com/mouse-blink/ivedit/internal/model"
)

// ConsoleAdapter exposes the host process's standard streams for mirroring
// compiler output. While held, writes are queued in order and flushed by
// Release; the TUI holds the console while it owns the terminal.
type ConsoleAdapter interface {
	Stdout() io.Writer
	Stderr() io.Writer
	Hold()
	Release() error
}

type consoleChunk struct {
	stream m.Stream
	data   []byte
}

// LocalConsoleAdapter mirrors to the writers it was built with.
type LocalConsoleAdapter struct {
	mu      sync.Mutex
	stdout  io.Writer
	stderr  io.Writer
	held    bool
	pending []consoleChunk
}

// NewLocalConsoleAdapter constructs a console over the given writers,
// normally os.Stdout and os.Stderr.
func NewLocalConsoleAdapter(stdout, stderr io.Writer) *LocalConsoleAdapter {
	return &LocalConsoleAdapter{stdout: stdout, stderr: stderr}
}

// Stdout returns a writer for the host's standard output.
func (c *LocalConsoleAdapter) Stdout() io.Writer {
	return consoleWriter{console: c, stream: m.Stdout}
}

// Stderr returns a writer for the host's standard error.
func (c *LocalConsoleAdapter) Stderr() io.Writer {
	return consoleWriter{console: c, stream: m.Stderr}
}

// Hold starts queueing writes.
func (c *LocalConsoleAdapter) Hold() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.held = true
}

// Release stops queueing and flushes everything queued so far, in the order
// it was written. The first write error is returned.
func (c *LocalConsoleAdapter) Release() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.held = false
	pending := c.pending
	c.pending = nil

	var firstErr error

	for _, chunk := range pending {
		if _, err := c.target(chunk.stream).Write(chunk.data); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

func (c *LocalConsoleAdapter) write(stream m.Stream, p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.held {
		c.pending = append(c.pending, consoleChunk{stream: stream, data: append([]byte(nil), p...)})
		return len(p), nil
	}

	return c.target(stream).Write(p)
}

func (c *LocalConsoleAdapter) target(stream m.Stream) io.Writer {
	if stream == m.Stderr {
		return c.stderr
	}

	return c.stdout
}

type consoleWriter struct {
	console *LocalConsoleAdapter
	stream  m.Stream
}

func (w consoleWriter) Write(p []byte) (int, error) {
	return w.console.write(w.stream, p)
}
