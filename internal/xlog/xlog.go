// Package xlog is a thin structured-logging facade over go.uber.org/zap:
// callers get With/WithName and leveled methods instead of reaching for
// zap directly, and tests get a NewNop() that discards everything.
package xlog

import "go.uber.org/zap"

type Logger interface {
	With(fields ...zap.Field) Logger
	WithName(name string) Logger

	Zap() *zap.Logger

	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Fatal(msg string, fields ...zap.Field)
}

type logger struct {
	z *zap.Logger
}

var _ Logger = (*logger)(nil)

func New(z *zap.Logger) Logger {
	return &logger{z: z}
}

func NewNop() Logger {
	return &logger{z: zap.NewNop()}
}

func (l *logger) Zap() *zap.Logger {
	return l.z
}

func (l *logger) With(fields ...zap.Field) Logger {
	return &logger{z: l.z.With(fields...)}
}

func (l *logger) WithName(name string) Logger {
	return &logger{z: l.z.Named(name)}
}

func (l *logger) Debug(msg string, fields ...zap.Field) { l.z.Debug(msg, fields...) }
func (l *logger) Info(msg string, fields ...zap.Field)  { l.z.Info(msg, fields...) }
func (l *logger) Warn(msg string, fields ...zap.Field)  { l.z.Warn(msg, fields...) }
func (l *logger) Error(msg string, fields ...zap.Field) { l.z.Error(msg, fields...) }
func (l *logger) Fatal(msg string, fields ...zap.Field) { l.z.Fatal(msg, fields...) }
