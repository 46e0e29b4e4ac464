package auth

import (
	"context"

	"github.com/ClemRoy/epicEvents/internal/policy"
)

type ctxKey string

const actorCtxKey = ctxKey("actor")

// WithActor stores the resolved actor in the context.
func WithActor(ctx context.Context, actor *policy.Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey, actor)
}

// ActorFromContext extracts the request's actor. A nil actor means the
// request is anonymous.
func ActorFromContext(ctx context.Context) *policy.Actor {
	actor, _ := ctx.Value(actorCtxKey).(*policy.Actor)
	return actor
}
