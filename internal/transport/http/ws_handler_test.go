package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"daily-trivia-service/internal/domain"
	"github.com/gorilla/websocket"
)

func TestWebSocketLeaderboardStream(t *testing.T) {
	mux, service := testMux(t)
	mux.HandleFunc("/ws/leaderboard", NewWSHandler(service).ServeWS)

	server := httptest.NewServer(mux)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws/leaderboard"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Initial snapshot arrives on connect.
	frame := readFrame(conn, t)
	if frame.Type != "leaderboard" || len(frame.Leaderboard) != 0 {
		t.Fatalf("unexpected initial frame: %+v", frame)
	}

	question, _, err := service.DailyQuestion(context.Background())
	if err != nil {
		t.Fatalf("daily question: %v", err)
	}
	if _, err := service.SubmitAnswer(context.Background(), 42, question.CorrectIndex, "alice"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	frame = readFrame(conn, t)
	if len(frame.Leaderboard) != 1 || frame.Leaderboard[0].FID != 42 || frame.Leaderboard[0].Streak != 1 {
		t.Fatalf("unexpected update frame: %+v", frame)
	}
}

func readFrame(conn *websocket.Conn, t *testing.T) leaderboardFrame {
	t.Helper()
	var frame struct {
		Type        string                    `json:"type"`
		Leaderboard []domain.LeaderboardEntry `json:"leaderboard"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return leaderboardFrame{Type: frame.Type, Leaderboard: frame.Leaderboard}
}
