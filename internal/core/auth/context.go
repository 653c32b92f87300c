package auth

import "context"

type ctxKey struct{}

// WithUserID 返回携带已认证用户 ID 的 context
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFrom 取出已认证用户 ID；未认证时 ok=false
func UserIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}
