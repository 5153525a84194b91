package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
)

type contextKey string

const (
	ctxUserID contextKey = "user_id"
	ctxRole   contextKey = "actor_role"
)

// UserIDFromContext returns the authenticated user id, or uuid.Nil.
func UserIDFromContext(ctx context.Context) uuid.UUID {
	if ctx == nil {
		return uuid.Nil
	}
	if v, ok := ctx.Value(ctxUserID).(uuid.UUID); ok {
		return v
	}
	return uuid.Nil
}

// RoleFromContext returns the authenticated role, or the empty Role.
func RoleFromContext(ctx context.Context) enums.Role {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxRole).(enums.Role); ok {
		return v
	}
	return ""
}

// WithUser injects the authenticated identity; used by Auth and by tests.
func WithUser(ctx context.Context, userID uuid.UUID, role enums.Role) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxUserID, userID)
	return context.WithValue(ctx, ctxRole, role)
}
