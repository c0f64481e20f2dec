package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyActor  ctxKey = "actor"
)

// Actor is the authenticated caller, extracted from the verified session
// and threaded explicitly into service calls.
type Actor struct {
	ID    string
	Email string
	Name  string
}

// ActorFromContext returns the authenticated actor, if any.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(CtxKeyActor).(Actor)
	return a, ok
}

func userIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
