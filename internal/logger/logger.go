// Package logger wires zap for the installer and exposes the small Logger
// interface the library packages accept.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Log is the global sugared logger. It is a no-op until Init is called.
	Log = zap.NewNop().Sugar()

	// logger is the underlying zap logger
	logger = zap.NewNop()
)

// Init initializes the global logger with the given level and format.
// Format "json" selects zap's production encoder, anything else the console
// encoder. Logs go to stderr so they never mix with progress output.
func Init(level, format string) error {
	var config zap.Config

	if format == "json" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.Encoding = "console"
		config.DisableStacktrace = true
	}

	zapLevel, err := ParseLevel(level)
	if err != nil {
		return err
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	logger = built
	Log = built.Sugar()
	return nil
}

// ParseLevel converts a string log level to a zapcore.Level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.WarnLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

// Sync flushes any buffered log entries.
func Sync() error {
	return logger.Sync()
}
