// Package logger owns the process-wide slog logger. Until Setup runs every
// call goes to a discard handler, so packages can log unconditionally.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Dir is the workspace-relative directory holding the log file.
const Dir = ".numdna/logs"

const (
	fileName = "numdna.log"

	// DefaultMaxBytes is the size at which numdna.log is rotated to numdna.log.1.
	DefaultMaxBytes int64 = 5 << 20
)

// Config selects where the log file lives and how verbose it is.
type Config struct {
	Root  string
	Debug bool

	// MaxBytes rotates an existing log larger than this on Setup.
	// Zero uses DefaultMaxBytes, a negative value disables rotation.
	MaxBytes int64
}

var discard = slog.New(slog.DiscardHandler)

var (
	mu      sync.RWMutex
	global  = discard
	logFile *os.File
	logPath string
)

// Setup opens the workspace log file and installs a JSON logger as the
// global one. The returned cleanup closes the file and restores discard.
func Setup(cfg Config) (func() error, error) {
	root := filepath.Clean(cfg.Root)
	dir := filepath.Join(root, filepath.FromSlash(Dir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		reset()
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, fileName)
	if err := rotate(path, cfg.MaxBytes); err != nil {
		reset()
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := slog.New(newHandler(f, cfg.Debug))

	mu.Lock()
	global, logFile, logPath = l, f, path
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	return func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		global, logFile, logPath = discard, nil, ""
		return cerr
	}, nil
}

func newHandler(w io.Writer, debug bool) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	return slog.NewJSONHandler(w, opts)
}

// rotate keeps one previous generation: an oversized log becomes <path>.1.
func rotate(path string, maxBytes int64) error {
	if maxBytes == 0 {
		maxBytes = DefaultMaxBytes
	}
	if maxBytes < 0 {
		return nil
	}

	fi, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if fi.Size() < maxBytes {
		return nil
	}
	if err := os.Rename(path, path+".1"); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}

// L returns the global logger; it discards until Setup succeeds.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return discard
	}
	return l
}

// Path is the active log file, empty before Setup.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if logFile == nil {
		return errors.New("logger not initialized")
	}
	return nil
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	global, logFile, logPath = discard, nil, ""
}
