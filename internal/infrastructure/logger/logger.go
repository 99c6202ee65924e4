package logger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Fields is an alias so callers do not import logrus directly.
type Fields = logrus.Fields

// Log is the process-wide logger.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.Formatter = textFormatter()
	return l
}

func textFormatter() logrus.Formatter {
	return &logrus.TextFormatter{
		DisableLevelTruncation: true,
		PadLevelText:           true,
		TimestampFormat:        "2006/01/02 15:04:05",
		FullTimestamp:          true,
	}
}

// Configure sets the level ("debug", "info", ...) and the output format
// ("text" or "json"). Unknown levels fall back to info.
func Configure(level, format string) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		Log.Formatter = &logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"}
	} else {
		Log.Formatter = textFormatter()
	}
}

// SetOutput redirects log output, mostly for tests.
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

func WithFields(fields Fields) *logrus.Entry {
	return Log.WithFields(fields)
}

func WithError(err error) *logrus.Entry {
	return Log.WithError(err)
}

func Debugf(format string, args ...any) { Log.Debugf(format, args...) }
func Infof(format string, args ...any)  { Log.Infof(format, args...) }
func Warnf(format string, args ...any)  { Log.Warnf(format, args...) }
func Errorf(format string, args ...any) { Log.Errorf(format, args...) }
func Fatalf(format string, args ...any) { Log.Fatalf(format, args...) }
