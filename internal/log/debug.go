// Package log is the debug log for svnrevert. Messages are buffered in
// memory until a destination is chosen with SetFile, so anything logged while
// flags and config are still being read is not lost.
package log

import (
	"io"
	"log"
	"os"
	"sync"
)

// DebugLogger buffers debug output until it is pointed at a file or told to
// discard everything.
type DebugLogger struct {
	mu      sync.Mutex
	out     io.Writer
	closer  io.Closer
	buffer  []byte
	discard bool
}

var (
	debugLogger = &DebugLogger{}
	stdLogger   = log.New(debugLogger, "", log.LstdFlags|log.Lmicroseconds)
)

// Write implements io.Writer.
func (l *DebugLogger) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case l.discard:
		return len(p), nil
	case l.out != nil:
		n, err := l.out.Write(p)
		if f, ok := l.out.(*os.File); ok {
			_ = f.Sync()
		}
		return n, err
	}

	// p may be reused by the caller
	l.buffer = append(l.buffer, p...)
	return len(p), nil
}

// attach switches the destination, flushing whatever was buffered. A nil
// writer discards the buffer and all later output.
func (l *DebugLogger) attach(w io.Writer, c io.Closer) error {
	if l.closer != nil {
		_ = l.closer.Close()
	}
	l.out, l.closer = w, c

	if w == nil {
		l.discard = true
		l.buffer = nil
		return nil
	}

	l.discard = false
	var err error
	if len(l.buffer) > 0 {
		_, err = w.Write(l.buffer)
		l.buffer = nil
	}
	return err
}

// SetFile appends the debug log to path, creating it when needed. An empty
// path discards buffered and future messages, as does a path that cannot be
// opened.
func SetFile(path string) error {
	debugLogger.mu.Lock()
	defer debugLogger.mu.Unlock()

	if path == "" {
		return debugLogger.attach(nil, nil)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		_ = debugLogger.attach(nil, nil)
		return err
	}
	return debugLogger.attach(f, f)
}

// SetOutput sends the debug log to w. The caller keeps ownership of w.
func SetOutput(w io.Writer) {
	debugLogger.mu.Lock()
	defer debugLogger.mu.Unlock()
	_ = debugLogger.attach(w, nil)
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	stdLogger.Printf(format, args...)
}


// Close closes the debug log file if one is open.
func Close() error {
	debugLogger.mu.Lock()
	defer debugLogger.mu.Unlock()

	if debugLogger.closer == nil {
		return nil
	}
	err := debugLogger.closer.Close()
	debugLogger.out, debugLogger.closer = nil, nil
	debugLogger.discard = true
	return err
}
