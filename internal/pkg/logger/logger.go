// Package logger holds the process-wide structured logger.
//
// Logging goes through zap. The level sits behind an AtomicLevel so
// verbosity can be raised at runtime without rebuilding the logger.
package logger

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	base  *zap.Logger
	level zap.AtomicLevel
	once  sync.Once
)

// Init builds the global logger. level is one of debug, info, warn,
// error; format is json or console. Subsequent calls are no-ops.
func Init(lvl, format string) error {
	var initErr error
	once.Do(func() {
		level = zap.NewAtomicLevel()
		if err := level.UnmarshalText([]byte(lvl)); err != nil {
			initErr = fmt.Errorf("parse log level %q: %w", lvl, err)
			return
		}

		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		var enc zapcore.Encoder
		switch format {
		case "console":
			encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
			enc = zapcore.NewConsoleEncoder(encCfg)
		default:
			enc = zapcore.NewJSONEncoder(encCfg)
		}

		out := zapcore.Lock(os.Stderr)
		base = zap.New(zapcore.NewCore(enc, out, level),
			zap.AddCaller(), zap.AddCallerSkip(1), zap.ErrorOutput(out))
	})
	return initErr
}

// SetLevel changes the verbosity of every logger built from this package.
func SetLevel(lvl string) error {
	return level.UnmarshalText([]byte(lvl))
}

// Level reports the current verbosity.
func Level() zapcore.Level {
	return level.Level()
}

// L returns the global logger. Panics if Init has not been called.
func L() *zap.Logger {
	if base == nil {
		panic("logger.Init() must be called before logger.L()")
	}
	return base
}

// With creates a child logger carrying the given fields.
func With(fields ...zap.Field) *zap.Logger {
	return L().With(fields...)
}

func Debug(msg string, fields ...zap.Field) { L().Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { L().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { L().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { L().Error(msg, fields...) }

// Fatal logs the message then exits the process.
func Fatal(msg string, fields ...zap.Field) { L().Fatal(msg, fields...) }

// Sync flushes buffered entries. Safe to call before Init.
func Sync() error {
	if base == nil {
		return nil
	}
	return base.Sync()
}
