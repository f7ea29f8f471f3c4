package httpx

import "context"

type ctxKey string

// CtxKeyUsername carries the authenticated username through the request
// context. Handlers operate only on this username; there is no further
// authorization model.
const CtxKeyUsername ctxKey = "username"

// UsernameFromContext returns the authenticated username, or "" when the
// request was not authenticated.
func UsernameFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUsername).(string); ok {
		return v
	}
	return ""
}
