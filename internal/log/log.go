// Package log provides the logging facade for the application. Commands
// install a concrete logger via Set; until then everything is discarded.
package log

import (
	"github.com/anchore/go-logger"
	"github.com/anchore/go-logger/adapter/discard"
)

var l logger.Logger = discard.New()

// Set installs the logger used by the rest of the application.
func Set(logger logger.Logger) {
	l = logger
}

// Get returns the currently installed logger.
func Get() logger.Logger {
	return l
}

func Errorf(format string, args ...interface{}) {
	l.Errorf(format, args...)
}

func Error(args ...interface{}) {
	l.Error(args...)
}

func Warnf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}

func Warn(args ...interface{}) {
	l.Warn(args...)
}

func Infof(format string, args ...interface{}) {
	l.Infof(format, args...)
}

func Info(args ...interface{}) {
	l.Info(args...)
}

func Debugf(format string, args ...interface{}) {
	l.Debugf(format, args...)
}

func Debug(args ...interface{}) {
	l.Debug(args...)
}
