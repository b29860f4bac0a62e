package logging

import (
	"io"
	"os"
	"strings"

	"fitness_tracker/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the standard logrus logger from cfg and returns the writer it logs to.
// When a log file is configured, output goes to stdout and a rotating file.
func Setup(cfg config.LogConfig) io.Writer {
	out := Writer(cfg)
	logrus.SetOutput(out)
	logrus.SetLevel(ParseLevel(cfg.Level))
	if strings.EqualFold(cfg.Format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.WithFields(logrus.Fields{
		"level":  cfg.Level,
		"format": cfg.Format,
		"file":   cfg.File,
	}).Info("Logger initialized")
	return out
}

// Writer builds the log destination without touching global state
func Writer(cfg config.LogConfig) io.Writer {
	if cfg.File == "" {
		return os.Stdout
	}
	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		LocalTime:  true,
	})
}

// ParseLevel maps a level name to a logrus level, defaulting to info
func ParseLevel(s string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
