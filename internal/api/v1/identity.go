package v1

import (
	"context"
	"net/http"
	"strconv"
)

// ActorIDHeader carries the identity of the caller. Mutating endpoints
// reject requests without it.
const ActorIDHeader = "X-Actor-ID"

type contextKey string

const actorIDKey contextKey = "actorID"

// IdentityMiddleware extracts the actor identity from the request header
// and stores it on the request context. Requests without the header pass
// through; handlers that need an identity reject them individually.
func IdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(ActorIDHeader)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || id <= 0 {
			writeErrorResponse(w, "invalid "+ActorIDHeader+" header", http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(r.Context(), actorIDKey, int32(id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// actorIDFromContext returns the actor ID stored by IdentityMiddleware.
func actorIDFromContext(ctx context.Context) (int32, bool) {
	id, ok := ctx.Value(actorIDKey).(int32)
	return id, ok
}

// requireActorID writes an unauthorized response and returns false when no
// actor identity is present on the request.
func requireActorID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	id, ok := actorIDFromContext(r.Context())
	if !ok {
		writeErrorResponse(w, "missing "+ActorIDHeader+" header", http.StatusUnauthorized)
		return 0, false
	}
	return id, true
}
