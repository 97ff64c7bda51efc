// Package logger provides leveled logging for the game.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger writes info and warnings to one stream and errors to another.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// NewLogger creates a logger writing to stdout and stderr.
func NewLogger() *Logger {
	return New(os.Stdout, os.Stderr)
}

// New creates a logger with explicit destinations.
func New(out, errOut io.Writer) *Logger {
	flags := log.Ldate | log.Ltime | log.Lshortfile
	return &Logger{
		infoLogger:  log.New(out, "[SNAKE-INFO] ", flags),
		warnLogger:  log.New(out, "[SNAKE-WARN] ", flags),
		errorLogger: log.New(errOut, "[SNAKE-ERROR] ", flags),
	}
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *Logger {
	return New(io.Discard, io.Discard)
}

func (l *Logger) Info(msg string) {
	l.infoLogger.Output(2, msg)
}

func (l *Logger) Infof(format string, v ...any) {
	l.infoLogger.Output(2, fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(msg string) {
	l.warnLogger.Output(2, msg)
}

func (l *Logger) Error(msg string) {
	l.errorLogger.Output(2, msg)
}

func (l *Logger) Errorf(format string, v ...any) {
	l.errorLogger.Output(2, fmt.Sprintf(format, v...))
}

// Event logs a round event, e.g. Event("round_end", id, "score=3").
func (l *Logger) Event(eventType, roundID, details string) {
	l.infoLogger.Output(2, fmt.Sprintf("[EVENT:%s] Round:%s | %s", eventType, roundID, details))
}
