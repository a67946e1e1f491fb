package logging

import (
	"context"

	"go.uber.org/zap"
)

type contextFieldsKey struct{}

// WithContextFields returns a copy of ctx carrying fields in addition to the
// ones already stored in it. ZapLogger's *Ctx methods append them to every entry.
func WithContextFields(ctx context.Context, fields ...zap.Field) context.Context {
	if len(fields) == 0 {
		return ctx
	}
	existing := fieldsFromContext(ctx)
	merged := make([]zap.Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, contextFieldsKey{}, merged)
}

func fieldsFromContext(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(contextFieldsKey{}).([]zap.Field)
	return fields
}
