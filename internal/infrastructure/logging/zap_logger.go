package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var zapLogLevelMapping = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

type zapLogger struct {
	logger *zap.SugaredLogger
	file   io.Closer
}

func newZapLogger(cfg LoggerConfig, out io.Writer, file io.Closer) (*zapLogger, error) {
	level, ok := zapLogLevelMapping[cfg.Level]
	if !ok && cfg.Level != "" {
		return nil, fmt.Errorf("unknown log level %q", cfg.Level)
	}
	if cfg.Level == "" {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Encoding {
	case "", "json":
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	case "console":
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	default:
		return nil, fmt.Errorf("unknown log encoding %q", cfg.Encoding)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(out), level)
	logger := newZapLoggerFromCore(core, cfg)
	logger.file = file
	return logger, nil
}

func newZapLoggerFromCore(core zapcore.Core, cfg LoggerConfig) *zapLogger {
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar().With(
		string(AppName), cfg.AppName,
		string(LoggerName), "zap",
		string(InstanceID), cfg.InstanceID,
	)

	return &zapLogger{logger: logger}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{logger: zap.NewNop().Sugar()}
}

func (l *zapLogger) Debug(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any) {
	l.logger.Debugw(msg, prepareZapParams(cat, sub, extra)...)
}

func (l *zapLogger) Info(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any) {
	l.logger.Infow(msg, prepareZapParams(cat, sub, extra)...)
}

func (l *zapLogger) Warn(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any) {
	l.logger.Warnw(msg, prepareZapParams(cat, sub, extra)...)
}

func (l *zapLogger) Error(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any) {
	l.logger.Errorw(msg, prepareZapParams(cat, sub, extra)...)
}

func (l *zapLogger) Sync() error {
	return l.logger.Sync()
}

// Close ignores Sync errors: syncing a terminal stdout fails on most platforms.
func (l *zapLogger) Close() error {
	_ = l.logger.Sync()
	return closeFile(l.file)
}

func prepareZapParams(cat Category, sub SubCategory, extra map[ExtraKey]any) []any {
	params := logParamsToZapParams(extra)
	return append(params, "Category", string(cat), "SubCategory", string(sub))
}
