// Package logging builds the process-wide logrus logger from LoggingConfig.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"gotravel/internal/config"
)

// New returns a logger configured for level, format and output path, plus a
// function that closes the output file. Unknown levels fall back to info.
func New(cfg config.LoggingConfig) (*logrus.Logger, func() error, error) {
	logger := logrus.New()

	switch strings.ToLower(cfg.Level) {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "warn":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}

	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	out, closeOutput, err := output(cfg.OutputPath)
	if err != nil {
		return nil, nil, err
	}
	logger.SetOutput(out)

	return logger, closeOutput, nil
}

func output(path string) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	switch path {
	case "", "stdout":
		return os.Stdout, noop, nil
	case "stderr":
		return os.Stderr, noop, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log output %s: %w", path, err)
	}
	return f, f.Close, nil
}
