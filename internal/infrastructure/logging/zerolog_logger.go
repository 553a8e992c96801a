package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

var zeroLogLevelMapping = map[string]zerolog.Level{
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

type zeroLogger struct {
	logger zerolog.Logger
	file   io.Closer
}

func newZeroLogger(cfg LoggerConfig, out io.Writer, file io.Closer) (*zeroLogger, error) {
	level, ok := zeroLogLevelMapping[cfg.Level]
	if !ok && cfg.Level != "" {
		return nil, fmt.Errorf("unknown log level %q", cfg.Level)
	}
	if cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	switch cfg.Encoding {
	case "", "json":
	case "console":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	default:
		return nil, fmt.Errorf("unknown log encoding %q", cfg.Encoding)
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str(string(AppName), cfg.AppName).
		Str(string(LoggerName), "zerolog").
		Str(string(InstanceID), cfg.InstanceID).
		Logger()

	return &zeroLogger{logger: logger, file: file}, nil
}

func (l *zeroLogger) Debug(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any) {
	l.event(l.logger.Debug(), cat, sub, extra).Msg(msg)
}

func (l *zeroLogger) Info(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any) {
	l.event(l.logger.Info(), cat, sub, extra).Msg(msg)
}

func (l *zeroLogger) Warn(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any) {
	l.event(l.logger.Warn(), cat, sub, extra).Msg(msg)
}

func (l *zeroLogger) Error(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any) {
	l.event(l.logger.Error(), cat, sub, extra).Msg(msg)
}

// Sync is a no-op: zerolog writes every event straight through.
func (l *zeroLogger) Sync() error {
	return nil
}

func (l *zeroLogger) Close() error {
	return closeFile(l.file)
}

func (l *zeroLogger) event(e *zerolog.Event, cat Category, sub SubCategory, extra map[ExtraKey]any) *zerolog.Event {
	return e.
		Str("Category", string(cat)).
		Str("SubCategory", string(sub)).
		Fields(logParamsToZeroParams(extra))
}
