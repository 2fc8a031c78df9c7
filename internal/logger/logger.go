package logger

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type ctxKey struct{}

// New builds the process logger. Debug mode switches to the human readable
// development encoder.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// ContextWithRequestID stores the request id for WithRequest.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the id stored by ContextWithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// WithRequest tags l with the request id carried by ctx, if any.
func WithRequest(ctx context.Context, l *zap.Logger) *zap.Logger {
	if id := RequestID(ctx); id != "" {
		return l.With(zap.String("request_id", id))
	}
	return l
}

// MaskEmail keeps the first three characters of the local part and the
// domain: "jane.doe@example.com" becomes "jan***@example.com".
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return "***"
	}
	prefix := local
	if r := []rune(local); len(r) > 3 {
		prefix = string(r[:3])
	}
	return prefix + "***@" + domain
}

// Email is a zap field carrying the masked address.
func Email(email string) zap.Field {
	return zap.String("email", MaskEmail(email))
}
