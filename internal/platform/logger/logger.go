package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Package-level logger so adapters and middleware log without threading a
// handle through every constructor. Defaults to a no-op until Init runs,
// which keeps tests quiet.
var log = zap.NewNop()

// Init replaces the no-op logger with a production JSON logger. Set
// LOG_LEVEL=debug to include per-operation timing output.
func Init(level string) error {
	cfg := zap.NewProductionConfig()

	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	log = l
	return nil
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	_ = log.Sync()
}

func Debug(msg string, fields ...zap.Field) { log.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { log.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { log.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { log.Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { log.Fatal(msg, fields...) }
