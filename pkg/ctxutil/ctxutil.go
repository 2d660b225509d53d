package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	accessKeyIDKey ctxKey = "access_key_id"
	accountIDKey   ctxKey = "account_id"
	requestIDKey   ctxKey = "request_id"
)

// WithAccessKeyID stores the verified access key ID in the context.
func WithAccessKeyID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, accessKeyIDKey, id)
}

// AccessKeyIDFromCtx extracts the access key ID from the context.
// Returns 0 and false if the value is missing, non-positive, or wrong type.
func AccessKeyIDFromCtx(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(accessKeyIDKey).(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// WithAccountID stores the sync account ID in the context.
func WithAccountID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, accountIDKey, id)
}

// AccountIDFromCtx extracts the sync account ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func AccountIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(accountIDKey).(uuid.UUID)
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
