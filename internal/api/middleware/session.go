package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/Cheertaboi/minimal-shop/internal/cache"
)

const SessionCookie = "shop_session"

type ctxKey struct{}

// Session attaches the visitor's session id to the request context, starting
// a new session (and cookie) when the browser has none or it has expired.
func Session(sessions *cache.SessionCache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(SessionCookie); err == nil {
				if _, err := uuid.Parse(c.Value); err == nil {
					if _, ok := sessions.Get(c.Value); ok {
						id = c.Value
					}
				}
			}
			if id == "" {
				id = sessions.Create().ID
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), id)))
		})
	}
}

func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
