package http

import (
	"log"
	"net/http"

	"daily-trivia-service/internal/app"
	"daily-trivia-service/internal/domain"
	"github.com/gorilla/websocket"
)

// WSHandler streams live leaderboard updates to websocket subscribers: the
// current ranking on connect, then a frame after every scored answer.
type WSHandler struct {
	service  *app.TriviaService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.TriviaService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type leaderboardFrame struct {
	Type        string                    `json:"type"`
	Leaderboard []domain.LeaderboardEntry `json:"leaderboard"`
}

// ServeWS upgrades the request and pushes leaderboard frames until the
// client goes away.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	updates, cancel, err := h.service.Subscribe(r.Context())
	if err != nil {
		_ = conn.WriteJSON(errorResponse{Error: err.Error()})
		return
	}
	defer cancel()

	// Reader goroutine exists only to observe the close handshake; inbound
	// payloads are ignored.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case entries, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(leaderboardFrame{Type: "leaderboard", Leaderboard: entries}); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		case <-done:
			return
		}
	}
}
