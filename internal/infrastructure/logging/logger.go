package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger interface {
	Debug(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any)
	Info(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any)
	Warn(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any)
	Error(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any)

	// Sync flushes any buffered entries.
	Sync() error
	// Close flushes and releases the log file, if any. Entries logged after
	// Close reopen the file.
	Close() error
}

type LoggerConfig struct {
	Logger     string
	Encoding   string
	Level      string
	FilePath   string
	AppName    string
	InstanceID string
}

func NewLogger(cfg LoggerConfig) (Logger, error) {
	if cfg.InstanceID == "" {
		cfg.InstanceID = uuid.NewString()
	}

	out, file, err := newWriter(cfg.FilePath)
	if err != nil {
		return nil, err
	}

	var logger Logger
	switch cfg.Logger {
	case "", "zap":
		logger, err = newZapLogger(cfg, out, file)
	case "zerolog":
		logger, err = newZeroLogger(cfg, out, file)
	default:
		err = fmt.Errorf("logger not supported: %q: supported loggers: [zap, zerolog]", cfg.Logger)
	}
	if err != nil {
		return nil, err
	}

	return logger, nil
}

// newWriter writes to stdout, and additionally to a rotating file when
// filePath is set. The returned closer is nil without a file.
func newWriter(filePath string) (io.Writer, io.Closer, error) {
	if filePath == "" {
		return os.Stdout, nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	}

	return io.MultiWriter(os.Stdout, file), file, nil
}

func closeFile(file io.Closer) error {
	if file == nil {
		return nil
	}

	return file.Close()
}
