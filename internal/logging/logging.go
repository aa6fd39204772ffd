// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// LogFileName is created inside the user config directory when file logging is on
const LogFileName = "picshift.log"

var (
	once   sync.Once
	logger *logrus.Logger
)

// Options control logger setup
type Options struct {
	Level   string // logrus level name; empty means info
	JSON    bool
	LogFile bool      // also append to LogFileName under the user config dir
	Output  io.Writer // defaults to os.Stdout
}

// Logger returns the shared logger, creating it with default options on first use
func Logger() *logrus.Logger {
	once.Do(func() {
		logger = newLogger(Options{}, os.Stdout)
	})
	return logger
}

// Setup configures the shared logger; only the first call (or Logger) takes effect
func Setup(opts Options) *logrus.Logger {
	once.Do(func() {
		var out io.Writer = os.Stdout
		if opts.Output != nil {
			out = opts.Output
		}
		if opts.LogFile {
			if file, err := openLogFile(); err == nil {
				out = io.MultiWriter(out, file)
			}
		}
		logger = newLogger(opts, out)
	})
	return logger
}

func newLogger(opts Options, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)

	if opts.JSON {
		l.SetFormatter(new(logrus.JSONFormatter))
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	return l
}

func openLogFile() (*os.File, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	dir = filepath.Join(dir, "picshift")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
