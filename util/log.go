package util

import (
	"os"
	"time"

	e "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const DefaultLogLevel = "warn"

// SetupLogger sends logs to stderr so stdout only ever carries the glyph.
func SetupLogger(level string) error {
	if level == "" {
		level = DefaultLogLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return e.Wrap(err, "parse log level")
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stderr)
	formatter := &logrus.TextFormatter{}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		formatter.FullTimestamp = true
		formatter.TimestampFormat = time.Kitchen
	}
	logrus.SetFormatter(formatter)
	return nil
}
