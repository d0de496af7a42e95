package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	instance *Logger
	once     sync.Once
)

// Level controls which messages reach the main log file
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

// ParseLevel converts a config string into a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Options configures the logger
type Options struct {
	Dir   string // Directory for listedit.log and journal.log
	Level Level
}

// Logger provides TUI-safe logging functionality
type Logger struct {
	fileLogger    *log.Logger
	journalLogger *log.Logger
	logFile       *os.File
	journalFile   *os.File
	level         Level
	mu            sync.Mutex
}

// Init initializes the global logger instance
func Init(opts Options) error {
	var err error
	once.Do(func() {
		instance, err = newLogger(opts)
	})
	return err
}

// newLogger creates a new logger instance
func newLogger(opts Options) (*Logger, error) {
	logsDir := opts.Dir
	if logsDir == "" {
		logsDir = "logs"
	}
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	logPath := filepath.Join(logsDir, "listedit.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	// The journal records every command and clipboard transfer
	journalPath := filepath.Join(logsDir, "journal.log")
	journalFile, err := os.OpenFile(journalPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("failed to open journal file: %w", err)
	}

	return &Logger{
		fileLogger:    log.New(logFile, "", log.LstdFlags|log.Lshortfile),
		journalLogger: log.New(journalFile, "", log.LstdFlags|log.Lmicroseconds),
		logFile:       logFile,
		journalFile:   journalFile,
		level:         opts.Level,
	}, nil
}

// NewWriter creates a logger that writes both streams to w, for tests
func NewWriter(w io.Writer, level Level) *Logger {
	return &Logger{
		fileLogger:    log.New(w, "", 0),
		journalLogger: log.New(w, "", 0),
		level:         level,
	}
}

// Install replaces the global instance and returns a restore func
func Install(l *Logger) func() {
	prev := instance
	instance = l
	return func() { instance = prev }
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	if instance != nil {
		instance.log(LevelInfo, "INFO", format, args...)
	}
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	if instance != nil {
		instance.log(LevelError, "ERROR", format, args...)
	}
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	if instance != nil {
		instance.log(LevelDebug, "DEBUG", format, args...)
	}
}

// Action records an edit or clipboard event in the journal
func Action(event string, data interface{}) {
	if instance != nil {
		instance.journal(event, data)
	}
}

// log writes a formatted message to the main log file
func (l *Logger) log(level Level, tag, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	message := fmt.Sprintf(format, args...)
	l.fileLogger.Printf("[%s] %s", tag, message)
}

// journal writes an event to the journal file
func (l *Logger) journal(event string, data interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.journalLogger.Printf("[%s] %+v", event, data)
}

// Close closes both log files
func Close() error {
	if instance != nil {
		var err1, err2 error
		if instance.logFile != nil {
			err1 = instance.logFile.Close()
		}
		if instance.journalFile != nil {
			err2 = instance.journalFile.Close()
		}
		if err1 != nil {
			return err1
		}
		return err2
	}
	return nil
}

// SetOutput allows changing the output destination (useful for testing)
func SetOutput(w io.Writer) {
	if instance != nil {
		instance.mu.Lock()
		defer instance.mu.Unlock()
		instance.fileLogger.SetOutput(w)
		instance.journalLogger.SetOutput(w)
	}
}
