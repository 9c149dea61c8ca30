package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options selects the level, format and destination of a logger. Empty
// fields fall back to LOG_LEVEL and LOG_FORMAT, then to info/text on stderr.
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// New builds a logger. Unknown levels fall back to info.
func New(opts Options) *logrus.Logger {
	log := logrus.New()

	levelName := opts.Level
	if levelName == "" {
		levelName = os.Getenv("LOG_LEVEL")
	}
	if levelName == "" {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	format := opts.Format
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	if strings.EqualFold(format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	log.SetOutput(out)
	return log
}

// Discard returns a logger that drops everything, for tests and for front
// ends that own the terminal.
func Discard() *logrus.Logger {
	return New(Options{Level: "panic", Output: io.Discard})
}
