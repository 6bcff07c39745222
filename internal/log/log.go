// Package log provides structured logging for the wallet toolkit.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the global logger instance.
var Logger zerolog.Logger

// Component loggers.
var (
	Wallet   zerolog.Logger
	HDKey    zerolog.Logger
	Mnemonic zerolog.Logger
	Config   zerolog.Logger
)

const consoleTimeFormat = "15:04:05"

func init() {
	// Quiet by default; library callers opt in through Init or SetLogger.
	Logger = NewConsoleLogger(os.Stderr, "warn")
	initComponentLoggers()
}

// Init initializes the logger with the given configuration.
// When file is non-empty, logs go to both stderr (colored or JSON depending
// on jsonOutput) and the file (always JSON).
func Init(level string, jsonOutput bool, file string) error {
	var console io.Writer = os.Stderr
	if !jsonOutput {
		console = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: consoleTimeFormat}
	}

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return err
		}
		SetLogger(newLogger(zerolog.MultiLevelWriter(console, f), level))
		return nil
	}

	SetLogger(newLogger(console, level))
	return nil
}

// SetLogger replaces the global logger and rebuilds the component loggers.
func SetLogger(l zerolog.Logger) {
	Logger = l
	initComponentLoggers()
}

// NewConsoleLogger creates a colored console logger.
func NewConsoleLogger(w io.Writer, level string) zerolog.Logger {
	return newLogger(zerolog.ConsoleWriter{Out: w, TimeFormat: consoleTimeFormat}, level)
}

// NewJSONLogger creates a structured JSON logger.
func NewJSONLogger(w io.Writer, level string) zerolog.Logger {
	return newLogger(w, level)
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a level name to zerolog.Level. It accepts the zerolog
// names plus "warning" and "off".
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// parseLevel is ParseLevel with unknown levels mapped to info.
func parseLevel(level string) zerolog.Level {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func initComponentLoggers() {
	Wallet = WithComponent("wallet")
	HDKey = WithComponent("hdkey")
	Mnemonic = WithComponent("mnemonic")
	Config = WithComponent("config")
}

// WithComponent returns a logger with a component field.
func WithComponent(name string) zerolog.Logger {
	return Logger.With().Str("component", name).Logger()
}

// WithNetwork returns a logger with a network field.
func WithNetwork(l zerolog.Logger, network string) zerolog.Logger {
	return l.With().Str("network", network).Logger()
}

// Debug logs a debug message.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info logs an info message.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn logs a warning message.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error logs an error message.
func Error() *zerolog.Event {
	return Logger.Error()
}

// Benchmark times an operation and logs its duration at debug level on
// l when the returned func is called.
func Benchmark(l zerolog.Logger, name string) func() {
	start := time.Now()
	return func() {
		l.Debug().
			Str("operation", name).
			Dur("duration", time.Since(start)).
			Msg("benchmark")
	}
}
