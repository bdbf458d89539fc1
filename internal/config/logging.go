package config

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// NewLogger builds a logrus logger writing to LogFile at LogLevel.
// Invalid levels fall back to warning; call Validate first to reject them.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	out := c.LogFile
	if out == nil {
		out = io.Discard
	}
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	if LogFormat(strings.ToLower(string(c.LogFormat))) == JSONFormat {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logger
}
