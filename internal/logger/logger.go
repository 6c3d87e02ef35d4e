package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the acting employee and company
// when the auth middleware has resolved them.
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if employeeID, ok := ctx.Value("employee_id").(string); ok && employeeID != "" {
		logger.Entry = logger.Entry.WithField("employee", employeeID)
	}
	if companyID, ok := ctx.Value("company_id").(string); ok && companyID != "" {
		logger.Entry = logger.Entry.WithField("company", companyID)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}
