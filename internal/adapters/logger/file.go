package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileLogger appends debug and error lines to a log file under the data
// dir. Logging must never get in the way of tracking, so write failures
// are swallowed.
type FileLogger struct {
	mu   sync.Mutex
	path string
}

// NewFileLogger creates a logger writing to <dir>/harulog.log.
func NewFileLogger(dir string) *FileLogger {
	return &FileLogger{path: filepath.Join(dir, "harulog.log")}
}

func (l *FileLogger) Debug(message string) {
	l.write("DEBUG", message)
}

func (l *FileLogger) Error(message string) {
	l.write("ERROR", message)
}

func (l *FileLogger) write(level, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	fmt.Fprintf(f, "%s [%s] %s\n", time.Now().Format(time.RFC3339), level, message)
}

// Nop is a logger that discards everything.
type Nop struct{}

func (Nop) Debug(string) {}
func (Nop) Error(string) {}
