package logging

import (
	"context"
	"log/slog"

	"github.com/khmm12/chats-service/internal/common/tracing"
)

var _ slog.Handler = (*EnhancedHandler)(nil)

// EnhancedHandler stamps every record with the trace id found in the record's context.
type EnhancedHandler struct {
	next slog.Handler
}

func NewEnhancedHandler(next slog.Handler) *EnhancedHandler {
	return &EnhancedHandler{next: next}
}

func (h *EnhancedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *EnhancedHandler) Handle(ctx context.Context, r slog.Record) error {
	if traceID := tracing.GetTraceID(ctx); traceID != "" {
		r = r.Clone()
		r.AddAttrs(slog.String("trace_id", traceID))
	}

	return h.next.Handle(ctx, r)
}

func (h *EnhancedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewEnhancedHandler(h.next.WithAttrs(attrs))
}

func (h *EnhancedHandler) WithGroup(name string) slog.Handler {
	return NewEnhancedHandler(h.next.WithGroup(name))
}
