package common

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	confLoggerLevel = "rendezvous.log.level"
)

const (
	defaultLoggerLevel = Error
)

func FormatLogger(logger Logger, format fmt.Stringer, args ...interface{}) Logger {
	return NewFormattedLogger(logger, format, args...)
}

type Logger interface {
	Debug(string, ...interface{})
	Info(string, ...interface{})
	Error(string, ...interface{})
}

type LoggerLevel int

const (
	Error LoggerLevel = iota
	Info
	Debug
)

func (l LoggerLevel) toLogrus() logrus.Level {
	switch l {
	default:
		return logrus.ErrorLevel
	case Info:
		return logrus.InfoLevel
	case Debug:
		return logrus.DebugLevel
	}
}

type standardLogger struct {
	log *logrus.Logger
}

// Builds a logger writing to stderr at the level named by
// "rendezvous.log.level" (0=error, 1=info, 2=debug).
func NewStandardLogger(c Config) Logger {
	log := logrus.New()
	log.SetLevel(LoggerLevel(c.OptionalInt(confLoggerLevel, int(defaultLoggerLevel))).toLogrus())
	return NewLogrusLogger(log)
}

func NewLogrusLogger(log *logrus.Logger) Logger {
	return &standardLogger{log}
}

func (s *standardLogger) Debug(format string, vals ...interface{}) {
	s.log.Debugf(format, vals...)
}

func (s *standardLogger) Info(format string, vals ...interface{}) {
	s.log.Infof(format, vals...)
}

func (s *standardLogger) Error(format string, vals ...interface{}) {
	s.log.Errorf(format, vals...)
}

type formattedLogger struct {
	log Logger
	fmt string
}

func NewFormattedLogger(base Logger, format fmt.Stringer, vals ...interface{}) Logger {
	prefix := fmt.Sprintf(format.String(), vals...)
	return &formattedLogger{base, strings.ReplaceAll(prefix, "%", "%%")}
}

func (s *formattedLogger) Debug(format string, vals ...interface{}) {
	s.log.Debug(s.fmt+": "+format, vals...)
}

func (s *formattedLogger) Info(format string, vals ...interface{}) {
	s.log.Info(s.fmt+": "+format, vals...)
}

func (s *formattedLogger) Error(format string, vals ...interface{}) {
	s.log.Error(s.fmt+": "+format, vals...)
}
