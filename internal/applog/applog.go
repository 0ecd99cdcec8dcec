// Package applog wraps charmbracelet/log into the small fixed set of
// level functions the CLI calls, so main and its subcommands don't each
// hold their own *log.Logger.
package applog

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.New(os.Stderr)

// Init configures the package logger's prefix and level. level is one of
// "debug", "info", "warn", "error"; an unrecognized value falls back to
// info.
func Init(prefix, level string) {
	logger.SetPrefix(prefix)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.RFC3339)
	logger.SetLevel(parseLevel(level))
}

func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func Debug(msg string, keyvals ...any) { logger.Debug(msg, keyvals...) }
func Info(msg string, keyvals ...any)  { logger.Info(msg, keyvals...) }
func Warn(msg string, keyvals ...any)  { logger.Warn(msg, keyvals...) }
func Error(msg string, keyvals ...any) { logger.Error(msg, keyvals...) }
func Fatal(msg string, keyvals ...any) { logger.Fatal(msg, keyvals...) }
