package llm

import "context"

type ctxKey int

const purposeCtxKey ctxKey = iota

// WithPurpose labels the context so the logging decorator can record
// what feature triggered the call ("coach", "replan", ...).
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeCtxKey, purpose)
}

// PurposeFrom reads the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeCtxKey).(string); ok {
		return p
	}
	return "unknown"
}
