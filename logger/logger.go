// Package logger is a zap logger carried through context.Context.
//
// Until Setup is called the default logger discards everything, so library
// packages stay silent in tests.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sghaida/oofix/serrors"
)

const (
	// DevelopmentEnvironment selects a human-readable, debug-level logger.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment selects a JSON, info-level logger.
	ProductionEnvironment = "production"
)

var defaultLogger = zap.NewNop() //nolint: gochecknoglobals

// Setup replaces the default logger for the given environment.
// Both zap presets write to stderr.
func Setup(environment string) error {
	var (
		l   *zap.Logger
		err error
	)

	switch environment {
	case DevelopmentEnvironment:
		l, err = zap.NewDevelopment()
	case ProductionEnvironment:
		l, err = zap.NewProduction()
	default:
		return serrors.With(serrors.ErrInvalidArgument, "unknown environment %q", environment)
	}
	if err != nil {
		return serrors.Wrap(serrors.ErrInvalidArgument, err, "building %s logger", environment)
	}

	defaultLogger = l

	return nil
}

type key struct{}

// Get returns the logger stored in ctx, or the default logger.
func Get(ctx context.Context) *zap.Logger {
	if l, _ := ctx.Value(key{}).(*zap.Logger); l != nil {
		return l
	}

	return defaultLogger
}

// WithLogger stores l in a derived context.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// WithFields derives a context whose logger always carries fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) { Get(ctx).Debug(msg, fields...) }
func Info(ctx context.Context, msg string, fields ...zapcore.Field)  { Get(ctx).Info(msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...zapcore.Field)  { Get(ctx).Warn(msg, fields...) }
func Error(ctx context.Context, msg string, fields ...zapcore.Field) { Get(ctx).Error(msg, fields...) }

// Sync flushes the context logger. Errors from syncing stderr on some
// platforms are not actionable and are dropped.
func Sync(ctx context.Context) {
	_ = Get(ctx).Sync()
}
