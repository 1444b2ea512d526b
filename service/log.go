// Package service wires symgraph, sourceingest, depxml, store, and query
// together into a project lifecycle with an Evaluate/Capabilities surface,
// grounded on original_source/src/provider/csharp.rs's CSharpProvider (the
// project-lock-and-query shape) without carrying over its gRPC transport.
package service

import (
	"log"
	"os"
)

// Level is a logging verbosity threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

// Logger is a small leveled wrapper around the standard library logger,
// matching the teacher's restraint around logging (plain log/fmt.Errorf
// messages, no structured logging library anywhere in its dependency graph).
type Logger struct {
	level Level
	out   *log.Logger
}

// NewLogger creates a Logger writing to os.Stderr at the given level.
func NewLogger(level Level) *Logger {
	return &Logger{level: level, out: log.New(os.Stderr, "", log.LstdFlags)}
}

// defaultLogger is used by the package-level Debug/Info/Error helpers.
var defaultLogger = NewLogger(LevelInfo)

// SetLevel adjusts the default logger's verbosity threshold.
func SetLevel(l Level) { defaultLogger.level = l }

func (l *Logger) log(level Level, prefix, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.out.Printf(prefix+": "+format, args...)
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(format string, args ...interface{}) { l.log(LevelDebug, "debug", format, args...) }

// Info logs at LevelInfo.
func (l *Logger) Info(format string, args ...interface{}) { l.log(LevelInfo, "info", format, args...) }

// Error logs at LevelError.
func (l *Logger) Error(format string, args ...interface{}) { l.log(LevelError, "error", format, args...) }

// Debug logs through the default logger.
func Debug(format string, args ...interface{}) { defaultLogger.Debug(format, args...) }

// Info logs through the default logger.
func Info(format string, args ...interface{}) { defaultLogger.Info(format, args...) }

// Error logs through the default logger.
func Error(format string, args ...interface{}) { defaultLogger.Error(format, args...) }
