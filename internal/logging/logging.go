// Package logging holds the process-wide logrus logger shared by the dispatch
// core and the dynemit command.
//
// The default level is warn, so library users see nothing unless a binding
// traps or they raise the level themselves.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu  sync.Mutex
	log *logrus.Logger
)

// Init configures the shared logger. level is any logrus level name, format is
// "text" or "json", and a nil w keeps the current output (stderr by default).
func Init(level, format string, w io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	var formatter logrus.Formatter
	switch strings.ToLower(format) {
	case "", "text":
		formatter = &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		}
	case "json":
		formatter = &logrus.JSONFormatter{}
	default:
		return fmt.Errorf("logging: unknown format %q", format)
	}

	l := Get()
	mu.Lock()
	defer mu.Unlock()
	l.SetLevel(lvl)
	l.SetFormatter(formatter)
	if w != nil {
		l.SetOutput(w)
	}
	return nil
}

// Get returns the logger instance, creating it on first use.
func Get() *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()
	if log == nil {
		log = newDefault()
	}
	return log
}

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// WithComponent returns an entry tagged with the emitting package.
func WithComponent(name string) *logrus.Entry {
	return Get().WithField("component", name)
}
