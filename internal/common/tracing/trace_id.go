package tracing

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

var traceIDCtxKey = ctxKey{}

const maxTraceIDLength = 128

// WithTraceID attaches a fresh trace id unless the context already carries one.
func WithTraceID(ctx context.Context) context.Context {
	if _, ok := ctx.Value(traceIDCtxKey).(string); ok {
		return ctx
	}

	return context.WithValue(ctx, traceIDCtxKey, generateTraceID())
}

// WithTraceIDFrom reuses an upstream id when it is safe to log, otherwise a new one is generated.
func WithTraceIDFrom(ctx context.Context, upstream string) context.Context {
	if !IsValidTraceID(upstream) {
		upstream = generateTraceID()
	}

	return context.WithValue(ctx, traceIDCtxKey, upstream)
}

func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(traceIDCtxKey).(string)
	if !ok {
		return ""
	}

	return traceID
}

// IsValidTraceID accepts non-empty printable ASCII up to 128 bytes.
func IsValidTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}

	for i := range len(id) {
		if c := id[i]; c < 0x20 || c > 0x7E {
			return false
		}
	}

	return true
}

func generateTraceID() string {
	v, _ := uuid.NewV7()
	return v.String()
}
