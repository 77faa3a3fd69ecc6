package api

import (
	"context"
	"net/http"
)

type contextKey string

const sessionContextKey = contextKey("session")

// SessionInfo is what the session middleware hands to handlers: the raw
// cookie token and the username it resolved to.
type SessionInfo struct {
	Token    string
	Username string
}

// SessionMiddleware resolves the session_id cookie before every handler
// that needs an authenticated user. No cookie redirects to /login; a cookie
// with no matching session redirects to /logout, which clears it.
func (s *Server) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		session, err := s.store.GetSessionByToken(r.Context(), cookie.Value)
		if err != nil {
			http.Error(w, "Failed to resolve session", http.StatusInternalServerError)
			return
		}
		if session == nil {
			http.Redirect(w, r, "/logout", http.StatusFound)
			return
		}

		username := session.Username
		if username == "" {
			username = "unknown user"
		}

		info := &SessionInfo{Token: cookie.Value, Username: username}
		ctx := context.WithValue(r.Context(), sessionContextKey, info)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetSessionFromContext(ctx context.Context) *SessionInfo {
	if info, ok := ctx.Value(sessionContextKey).(*SessionInfo); ok {
		return info
	}
	return nil
}
