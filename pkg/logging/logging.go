package logging

import (
	"io"

	logrustash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// AddHook adds a hook to the internal logrus instance
func AddHook(hook logrus.Hook) {
	logger.AddHook(hook)
}

// NewLogstashHook produces a hook that ships every entry to w as logstash json
func NewLogstashHook(w io.Writer, appName string) logrus.Hook {
	return logrustash.New(w, logrustash.DefaultFormatter(logrus.Fields{"type": appName}))
}

// SetLevel sets the minimum level of the internal logrus instance
func SetLevel(level logrus.Level) {
	logger.SetLevel(level)
}

// SetOutput redirects the internal logrus instance
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetJSONFormatter switches output to json lines
func SetJSONFormatter() {
	logger.SetFormatter(&logrus.JSONFormatter{})
}

// WithField creates an entry with a single field
func WithField(key string, value interface{}) *logrus.Entry {
	return logger.WithField(key, value)
}

// WithFields creates an entry with multiple fields
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

// Info logs
func Info(args ...interface{}) {
	logger.Info(args...)
}

// Debug logs
func Debug(args ...interface{}) {
	logger.Debug(args...)
}

// Warn logs
func Warn(args ...interface{}) {
	logger.Warn(args...)
}

// Error logs
func Error(args ...interface{}) {
	logger.Error(args...)
}
