package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	memberIDKey  ctxKey = "member_id"
	requestIDKey ctxKey = "request_id"
)

// WithMemberID stores the authenticated member ID in the context.
func WithMemberID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, memberIDKey, id)
}

// MemberIDFromCtx extracts the member ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func MemberIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(memberIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
