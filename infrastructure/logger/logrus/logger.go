// ABOUTME: Logger implementation backed by logrus
// ABOUTME: Provides structured logging with level support

package logrus

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger implements the interfaces.Logger interface using logrus
type Logger struct {
	log *logrus.Logger
}

// NewLogger creates a logrus-backed logger writing to stdout
func NewLogger(level string) *Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return &Logger{log: log}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
