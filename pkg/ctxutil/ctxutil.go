package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const operationIDKey ctxKey = "operation_id"

// WithOperationID stores the operation ID in the context.
func WithOperationID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, operationIDKey, id)
}

// NewOperation returns a context carrying a freshly generated operation ID.
// An ID already present in ctx is kept.
func NewOperation(ctx context.Context) context.Context {
	if _, ok := OperationIDFromCtx(ctx); ok {
		return ctx
	}
	return WithOperationID(ctx, uuid.New())
}

// OperationIDFromCtx extracts the operation ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func OperationIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(operationIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
