// Package logging builds the zap logger used across inkqr and adapts it to
// the small component-tagged Logger interface the other packages accept.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging shape every package depends on. The component names
// the subsystem ("render", "http", "fb", ...).
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Config represents configuration options for logger initialization.
type Config struct {
	Debug bool   // Enable debug level
	File  string // Also write JSON lines to this file when set
}

// ZapLogger routes component logs to named zap loggers.
type ZapLogger struct {
	base *zap.SugaredLogger
}

// New builds a console logger and, when cfg.File is set, a JSON file core
// next to it.
func New(cfg Config) (*ZapLogger, error) {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "timestamp",
		NameKey:        "logger",
		CallerKey:      "caller",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), level),
	}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", cfg.File, err)
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(f), level))
	}

	log := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
	return &ZapLogger{base: log.Named("inkqr").Sugar()}, nil
}

// NewFromZap wraps an existing zap logger, mostly for tests using zaptest
// or observer cores.
func NewFromZap(l *zap.Logger) *ZapLogger {
	return &ZapLogger{base: l.Sugar()}
}

func (l *ZapLogger) Infof(component string, format string, args ...interface{}) {
	l.base.Named(component).Infof(format, args...)
}

func (l *ZapLogger) Errorf(component string, format string, args ...interface{}) {
	l.base.Named(component).Errorf(format, args...)
}

// Debugf is not part of Logger; callers holding a *ZapLogger may use it for
// per-request noise.
func (l *ZapLogger) Debugf(component string, format string, args ...interface{}) {
	l.base.Named(component).Debugf(format, args...)
}

// Zap exposes the underlying logger for libraries that want a *zap.Logger.
func (l *ZapLogger) Zap() *zap.Logger { return l.base.Desugar() }

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error { return l.base.Sync() }

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}
