package logging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pion/logging"
)

// LevelTrace sits below slog.LevelDebug so pion trace output stays hidden at debug level.
const LevelTrace = slog.LevelDebug - 4

var _ logging.LoggerFactory = (*PionLoggerFactory)(nil)

// PionLoggerFactory routes logs of pion libraries into slog.
type PionLoggerFactory struct {
	logger *slog.Logger
}

func NewPionLoggerFactory(logger *slog.Logger) *PionLoggerFactory {
	return &PionLoggerFactory{logger: logger}
}

func (f *PionLoggerFactory) NewLogger(scope string) logging.LeveledLogger {
	return &pionLogger{logger: f.logger.With(slog.String("scope", scope))}
}

type pionLogger struct {
	logger *slog.Logger
}

func (l *pionLogger) log(level slog.Level, msg string) {
	l.logger.Log(context.Background(), level, msg)
}

func (l *pionLogger) Trace(msg string) { l.log(LevelTrace, msg) }
func (l *pionLogger) Tracef(format string, args ...any) {
	l.log(LevelTrace, fmt.Sprintf(format, args...))
}
func (l *pionLogger) Debug(msg string) { l.log(slog.LevelDebug, msg) }
func (l *pionLogger) Debugf(format string, args ...any) {
	l.log(slog.LevelDebug, fmt.Sprintf(format, args...))
}
func (l *pionLogger) Info(msg string) { l.log(slog.LevelInfo, msg) }
func (l *pionLogger) Infof(format string, args ...any) {
	l.log(slog.LevelInfo, fmt.Sprintf(format, args...))
}
func (l *pionLogger) Warn(msg string) { l.log(slog.LevelWarn, msg) }
func (l *pionLogger) Warnf(format string, args ...any) {
	l.log(slog.LevelWarn, fmt.Sprintf(format, args...))
}
func (l *pionLogger) Error(msg string) { l.log(slog.LevelError, msg) }
func (l *pionLogger) Errorf(format string, args ...any) {
	l.log(slog.LevelError, fmt.Sprintf(format, args...))
}
