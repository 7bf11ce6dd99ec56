package logging

import (
	"context"
	"strings"
)

// FormatLogger is the printf style logger embedded databases such as badger
// accept.
type FormatLogger interface {
	Errorf(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type badgerLogger struct {
	logger Logger
}

// BadgerLogger routes badger's messages into logger. Badger is chatty, so
// its info messages are demoted to debug.
func BadgerLogger(logger Logger) FormatLogger {
	return badgerLogger{logger.WithPrefix("[badger]")}
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Errorf(context.Background(), trimNewline(format), args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warnf(context.Background(), trimNewline(format), args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debugf(context.Background(), trimNewline(format), args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Tracef(context.Background(), trimNewline(format), args...)
}

func trimNewline(format string) string {
	return strings.TrimSuffix(format, "\n")
}
