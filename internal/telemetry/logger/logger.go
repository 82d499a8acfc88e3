// Package logger provides structured logging for the codec's CLI and
// serve command.
package logger

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *zap.Logger
	once         sync.Once
)

type contextKey string

const (
	// RequestIDKey is the context key for a request/run identifier.
	RequestIDKey contextKey = "request_id"
	// ColumnKey is the context key for the column currently being converted.
	ColumnKey contextKey = "column"
)

// Config represents logger configuration.
type Config struct {
	Level       string
	Development bool
	Encoding    string // json or console
	OutputPaths []string
}

// Init initializes the global logger. Safe to call once; subsequent
// calls are no-ops.
func Init(cfg Config) error {
	var err error
	once.Do(func() {
		globalLogger, err = newLogger(cfg)
	})
	return err
}

func newLogger(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if cfg.Development {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	outputPaths := cfg.OutputPaths
	if len(outputPaths) == 0 {
		outputPaths = []string{"stdout"}
	}

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      cfg.Development,
		Encoding:         cfg.Encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}

	zl, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	if cfg.Development {
		zl = zl.WithOptions(zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return zl, nil
}

// Get returns the global logger, lazily initializing a default one.
func Get() *zap.Logger {
	if globalLogger == nil {
		cfg := Config{Level: "info", Encoding: "json"}
		if err := Init(cfg); err != nil {
			zl, _ := zap.NewProduction()
			globalLogger = zl
		}
	}
	return globalLogger
}

// WithContext returns a logger enriched with request/column context
// values, used at the start of each encode/decode call so every log
// line from that call carries which column it concerns.
func WithContext(ctx context.Context) *zap.Logger {
	zl := Get()
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		zl = zl.With(zap.String("request_id", requestID))
	}
	if column, ok := ctx.Value(ColumnKey).(string); ok {
		zl = zl.With(zap.String("column", column))
	}
	return zl
}

func Debug(msg string, fields ...zap.Field) { Get().Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { Get().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { Get().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { Get().Error(msg, fields...) }

// Fatal logs a fatal message and exits.
func Fatal(msg string, fields ...zap.Field) {
	Get().Fatal(msg, fields...)
	os.Exit(1)
}

// With creates a child logger with additional fields.
func With(fields ...zap.Field) *zap.Logger { return Get().With(fields...) }

// Sync flushes any buffered log entries.
func Sync() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}
