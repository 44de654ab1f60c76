package logging

import (
	"context"

	"github.com/google/uuid"
)

// Module labels log records with the subsystem that produced them.
type Module string

const (
	ModuleReminder  Module = "reminder"
	ModuleScheduler Module = "scheduler"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	moduleKey    contextKey = "module"
)

// ValidateAndExtractRequestID returns the incoming request id when it is
// a well-formed UUID, otherwise a freshly generated one.
func ValidateAndExtractRequestID(incoming string) string {
	if _, err := uuid.Parse(incoming); err == nil {
		return incoming
	}

	return uuid.NewString()
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}

	return ""
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFromContext(ctx context.Context) Module {
	if v, ok := ctx.Value(moduleKey).(Module); ok {
		return v
	}

	return ""
}
