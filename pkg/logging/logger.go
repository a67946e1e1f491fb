package logging

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// wrapperFrames is the number of stack frames between a caller and zap's Check.
const wrapperFrames = 2

type ZapLogger struct {
	logger *zap.Logger
}

func NewZapLogger(level zapcore.Level, opts ...Option) (*ZapLogger, error) {
	s := defaultSettings(zap.NewAtomicLevelAt(level))
	for _, opt := range opts {
		opt(s)
	}

	logger, err := s.config.Build(s.opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}

	return &ZapLogger{
		logger: logger,
	}, nil
}

// New wraps an already built zap logger.
func New(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{
		logger: logger.WithOptions(zap.AddCallerSkip(wrapperFrames)),
	}
}

func NewNop() *ZapLogger {
	return New(zap.NewNop())
}

func (z *ZapLogger) DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	z.log(ctx, zapcore.DebugLevel, msg, fields)
}

func (z *ZapLogger) InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	z.log(ctx, zapcore.InfoLevel, msg, fields)
}

func (z *ZapLogger) WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	z.log(ctx, zapcore.WarnLevel, msg, fields)
}

func (z *ZapLogger) ErrorCtx(ctx context.Context, msg string, fields ...zap.Field) {
	z.log(ctx, zapcore.ErrorLevel, msg, fields)
}

func (z *ZapLogger) Sync() error {
	return z.logger.Sync()
}

func (z *ZapLogger) log(ctx context.Context, level zapcore.Level, msg string, fields []zap.Field) {
	ce := z.logger.Check(level, msg)
	if ce == nil {
		return
	}
	ctxFields := fieldsFromContext(ctx)
	if len(ctxFields) == 0 {
		ce.Write(fields...)
		return
	}
	all := make([]zap.Field, 0, len(ctxFields)+len(fields))
	all = append(all, ctxFields...)
	all = append(all, fields...)
	ce.Write(all...)
}
