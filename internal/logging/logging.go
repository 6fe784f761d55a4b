// Package logging builds the loggers used by the reading-list tools.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log/v2"
)

// Logger is the logging capability injected into the API clients.
// *log.Logger satisfies it.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// FileTimeFormat is the timestamp layout used in log file names.
const FileTimeFormat = "20060102150405"

// New returns a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// FileName returns the log file name for a run started at t,
// e.g. get_list_title-20230101120000.log.
func FileName(prefix string, t time.Time) string {
	return fmt.Sprintf("%s-%s.log", prefix, t.Format(FileTimeFormat))
}

// Open creates (truncating) the run's log file in dir and returns a logger
// that writes to both stdout and that file. The caller must close the
// returned file.
func Open(dir, prefix string, now time.Time, stdout io.Writer, level log.Level) (*log.Logger, *os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, FileName(prefix, now)))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}

	return New(io.MultiWriter(stdout, f), level), f, nil
}
