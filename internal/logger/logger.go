// Package logger builds the CLI logger: charmbracelet/log to stderr, with
// optional rotation into a log file so self-heal and write-failure events
// stay diagnosable after the session ends.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration.
type Config struct {
	Debug  bool
	LogDir string // when set, log output also rotates into LogDir/moodlog.log
}

// New builds a logger from cfg. Without a log dir everything goes to
// stderr. With one, normal runs write to the rotating file only and debug
// runs tee to stderr as well.
func New(cfg Config) (*log.Logger, error) {
	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	var writer io.Writer = os.Stderr
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
			return nil, err
		}

		fileWriter := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogDir, "moodlog.log"),
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}

		if cfg.Debug {
			writer = io.MultiWriter(os.Stderr, fileWriter)
		} else {
			writer = fileWriter
		}
	}

	return log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "moodlog",
	}), nil
}
