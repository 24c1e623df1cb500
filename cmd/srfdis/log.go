package main

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// setupLogger builds the command logger. Verbose only raises the default
// info level.
func setupLogger(cfg settings, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "warn":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	case "info":
		if cfg.Verbose {
			logger.SetLevel(logrus.DebugLevel)
		} else {
			logger.SetLevel(logrus.InfoLevel)
		}
	default:
		logger.SetLevel(logrus.InfoLevel)
		logger.Warnf("unknown log level %q, using info", cfg.LogLevel)
	}

	return logger
}
