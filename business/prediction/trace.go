package prediction

import "context"

type traceIDKey struct{}

// WithTraceID tags ctx with the request's trace id so service logs can be correlated.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	if traceID == "" {
		return ctx
	}
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns "" for untagged contexts.
func TraceIDFromContext(ctx context.Context) string {
	tid, _ := ctx.Value(traceIDKey{}).(string)
	return tid
}
