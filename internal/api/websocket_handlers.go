package api

import (
	"log"
	"net/http"

	"github.com/VarshiniKilaru09/quotes-project/internal/websocket"
)

func (s *Server) ServeWsHandler(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		log.Println("WS connection attempt without session cookie")
		return
	}

	session, err := s.store.GetSessionByToken(r.Context(), cookie.Value)
	if err != nil {
		log.Printf("WS session lookup failed: %v", err)
		return
	}
	if session == nil {
		log.Println("WS connection attempt with unknown session token")
		return
	}

	conn, err := websocket.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	client := websocket.NewClient(s.wsHub, conn, session.Username)
	s.wsHub.Register <- client

	go client.ReadPump()
	go client.WritePump()
}
