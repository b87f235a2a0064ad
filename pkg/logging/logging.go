// pkg/logging/logging.go - leveled logging for the EDS deployment tools.
//
// One logger per process, initialized from the configuration. Output
// goes to the console and, when a log directory is configured, to a
// per-tool log file underneath it.

package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LogLevel represents the severity of the log message.
type LogLevel int

const (
	LevelError LogLevel = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// String returns the string representation of the LogLevel.
func (ll LogLevel) String() string {
	switch ll {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// parseLevel maps a configured level name to a LogLevel, defaulting to
// INFO for anything unrecognized.
func parseLevel(name string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ERROR":
		return LevelError
	case "WARN", "WARNING":
		return LevelWarn
	case "DEBUG":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// Logger writes leveled messages to the console and an optional file.
type Logger struct {
	mu      sync.Mutex
	logger  *log.Logger
	level   LogLevel
	logFile *os.File
}

var (
	instance *Logger
	once     sync.Once
)

// Options configures Init.
type Options struct {
	Tool     string // tool name, used for the log file name
	LogPath  string // log directory; empty disables file output
	LogLevel string // ERROR, WARN, INFO or DEBUG
	Verbose  bool   // raises a quieter LogLevel to INFO
	Debug    bool   // forces DEBUG regardless of LogLevel
}

// Init initializes the singleton logger. It must be called before any
// logging functions are used; calling it again is a no-op.
func Init(opts Options) error {
	var initErr error
	once.Do(func() {
		instance, initErr = newLogger(opts)
	})
	return initErr
}

func newLogger(opts Options) (*Logger, error) {
	level := parseLevel(opts.LogLevel)
	if opts.Verbose && level < LevelInfo {
		level = LevelInfo
	}
	if opts.Debug {
		level = LevelDebug
	}

	var out io.Writer = os.Stdout
	var logFile *os.File
	if opts.LogPath != "" {
		if err := os.MkdirAll(opts.LogPath, 0755); err != nil {
			return nil, fmt.Errorf("creating log directory %s: %w", opts.LogPath, err)
		}
		name := opts.Tool
		if name == "" {
			name = "eds"
		}
		path := filepath.Join(opts.LogPath, name+".log")
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", path, err)
		}
		logFile = f
		out = io.MultiWriter(os.Stdout, f)
	}

	return &Logger{
		logger:  log.New(out, "", log.LstdFlags),
		level:   level,
		logFile: logFile,
	}, nil
}

// Close flushes and closes the log file, if any.
func Close() {
	if instance == nil || instance.logFile == nil {
		return
	}
	instance.mu.Lock()
	defer instance.mu.Unlock()
	instance.logFile.Close()
	instance.logFile = nil
}

func (l *Logger) logf(level LogLevel, format string, args ...interface{}) {
	if level > l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

// Package-level convenience functions. Before Init, Info, Warn and
// Error fall back to the standard logger so early failures are never
// swallowed; Debug stays silent, since no level has been configured
// yet.

func Debug(format string, args ...interface{}) {
	if instance == nil {
		return
	}
	instance.logf(LevelDebug, format, args...)
}

func Info(format string, args ...interface{}) {
	if instance == nil {
		log.Printf(format, args...)
		return
	}
	instance.logf(LevelInfo, format, args...)
}

func Warn(format string, args ...interface{}) {
	if instance == nil {
		log.Printf(format, args...)
		return
	}
	instance.logf(LevelWarn, format, args...)
}

func Error(format string, args ...interface{}) {
	if instance == nil {
		log.Printf(format, args...)
		return
	}
	instance.logf(LevelError, format, args...)
}
