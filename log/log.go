// Package log is the logging facade used across anikit.
// Messages go to a daily file under where.Logs() and are dropped entirely unless logs.write is enabled.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/anisan-cli/anikit/filesystem"
	"github.com/anisan-cli/anikit/key"
	"github.com/anisan-cli/anikit/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var enabled bool

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// Setup reads the logs.* keys and, when logging is on, points logrus at today's log file.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return nil
}

// Enabled reports whether log lines are being written.
func Enabled() bool {
	return enabled
}

// WithFields returns an entry carrying structured fields.
// While logging is off the entry writes nowhere.
func WithFields(fields logrus.Fields) *logrus.Entry {
	if !enabled {
		return logrus.NewEntry(discard)
	}

	return logrus.WithFields(fields)
}

func emit(level logrus.Level, args ...any) {
	if enabled {
		logrus.StandardLogger().Log(level, args...)
	}
}

func emitf(level logrus.Level, format string, args ...any) {
	if enabled {
		logrus.StandardLogger().Logf(level, format, args...)
	}
}

func Error(args ...any)                 { emit(logrus.ErrorLevel, args...) }
func Errorf(format string, args ...any) { emitf(logrus.ErrorLevel, format, args...) }
func Warn(args ...any)                  { emit(logrus.WarnLevel, args...) }
func Warnf(format string, args ...any)  { emitf(logrus.WarnLevel, format, args...) }
func Info(args ...any)                  { emit(logrus.InfoLevel, args...) }
func Infof(format string, args ...any)  { emitf(logrus.InfoLevel, format, args...) }
func Debug(args ...any)                 { emit(logrus.DebugLevel, args...) }
func Debugf(format string, args ...any) { emitf(logrus.DebugLevel, format, args...) }
func Tracef(format string, args ...any) { emitf(logrus.TraceLevel, format, args...) }
