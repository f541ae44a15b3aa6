package logger

import "go.uber.org/zap"

// Logger provides structured logging with key-value pairs.
// Packages take a Logger rather than reaching for the global.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// zapLogger adapts a zap.SugaredLogger to Logger.
type zapLogger struct {
	s *zap.SugaredLogger
}

// New wraps a sugared logger. A nil argument yields a no-op logger.
func New(s *zap.SugaredLogger) Logger {
	if s == nil {
		return Nop()
	}
	return &zapLogger{s: s}
}

// Default returns a Logger backed by the global logger as configured by Init.
func Default() Logger {
	return New(Log)
}

func (z *zapLogger) Debug(msg string, kv ...interface{}) { z.s.Debugw(msg, kv...) }
func (z *zapLogger) Info(msg string, kv ...interface{})  { z.s.Infow(msg, kv...) }
func (z *zapLogger) Warn(msg string, kv ...interface{})  { z.s.Warnw(msg, kv...) }
func (z *zapLogger) Error(msg string, kv ...interface{}) { z.s.Errorw(msg, kv...) }

// noopLogger is a Logger implementation that does nothing.
type noopLogger struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Error(msg string, keysAndValues ...interface{}) {}
