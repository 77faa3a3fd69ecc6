package api

import (
	"net/http"

	"github.com/VarshiniKilaru09/quotes-project/internal/config"
	"github.com/VarshiniKilaru09/quotes-project/internal/database"
	"github.com/VarshiniKilaru09/quotes-project/internal/websocket"
)

const sessionCookieName = "session_id"

type Server struct {
	config *config.Config
	store  *database.Store
	wsHub  *websocket.Hub
}

func NewServer(cfg *config.Config, store *database.Store, wsHub *websocket.Hub) *Server {
	return &Server{
		config: cfg,
		store:  store,
		wsHub:  wsHub,
	}
}

// setSessionCookie writes the session_id cookie. The token is opaque and
// unsigned; trust lives entirely in the sessions table.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.config.Cookie.Secure,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.config.Cookie.Secure,
	})
}

func (s *Server) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
