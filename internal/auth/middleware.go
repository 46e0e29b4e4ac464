package auth

import (
	"net/http"
	"strings"

	"github.com/ClemRoy/epicEvents/internal/policy"
)

// Middleware returns a handler wrapper that authenticates bearer tokens.
// On a valid token it resolves the Actor once (one group-membership query)
// and attaches it to the request context; every downstream authorization
// check reuses that same Actor. Requests without a usable token pass through
// anonymously and are rejected later by the gate, which distinguishes
// unauthenticated from forbidden.
func Middleware(secret string, resolver *policy.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token, ok := bearerToken(r); ok {
				if userID, err := ParseToken(secret, token); err == nil {
					actor, err := resolver.Resolve(r.Context(), userID)
					if err != nil {
						http.Error(w, "internal error", http.StatusInternalServerError)
						return
					}
					if actor != nil {
						r = r.WithContext(WithActor(r.Context(), actor))
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
