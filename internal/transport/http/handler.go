package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"daily-trivia-service/internal/app"
	"daily-trivia-service/internal/domain"
)

// leaderboardLimit is the fixed size of the /api/leaderboard response.
const leaderboardLimit = 20

// Handler exposes the daily-trivia use cases over JSON HTTP.
type Handler struct {
	service *app.TriviaService
}

func NewHandler(service *app.TriviaService) *Handler {
	return &Handler{service: service}
}

// Register wires the API routes onto the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/question", h.handleDailyQuestion)
	mux.HandleFunc("/api/user/{fid}", h.handleUser)
	mux.HandleFunc("/api/answer", h.handleAnswer)
	mux.HandleFunc("/api/leaderboard", h.handleLeaderboard)
}

// publicQuestion is the unscored view: no correct index, no fun fact.
type publicQuestion struct {
	ID             int      `json:"id"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	Category       string   `json:"category"`
	QuestionNumber int      `json:"questionNumber"`
}

type userResponse struct {
	User           domain.UserRecord    `json:"user"`
	HasPlayedToday bool                 `json:"hasPlayedToday"`
	TodaysAnswer   *domain.TodaysAnswer `json:"todaysAnswer"`
	Question       domain.Question      `json:"question"`
	QuestionNumber int                  `json:"questionNumber"`
}

type answerRequest struct {
	FID         *int64 `json:"fid"`
	Username    string `json:"username,omitempty"`
	AnswerIndex *int   `json:"answerIndex"`
}

type answerResponse struct {
	Success       bool              `json:"success"`
	Correct       bool              `json:"isCorrect"`
	CorrectAnswer int               `json:"correctAnswer"`
	User          domain.UserRecord `json:"user"`
	FunFact       string            `json:"funFact"`
}

type alreadyPlayedResponse struct {
	Error        string               `json:"error"`
	User         domain.UserRecord    `json:"user"`
	TodaysAnswer *domain.TodaysAnswer `json:"todaysAnswer"`
}

type leaderboardResponse struct {
	Leaderboard []domain.LeaderboardEntry `json:"leaderboard"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleDailyQuestion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	question, number, err := h.service.DailyQuestion(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, publicQuestion{
		ID:             question.ID,
		Question:       question.Text,
		Options:        question.Options,
		Category:       question.Category,
		QuestionNumber: number,
	})
}

func (h *Handler) handleUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	fid, err := strconv.ParseInt(r.PathValue("fid"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid fid"})
		return
	}

	status, err := h.service.Status(r.Context(), fid)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		User:           status.User,
		HasPlayedToday: status.HasPlayedToday,
		TodaysAnswer:   status.TodaysAnswer,
		Question:       status.Question,
		QuestionNumber: status.QuestionNumber,
	})
}

func (h *Handler) handleAnswer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	defer r.Body.Close()

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}
	if req.FID == nil || req.AnswerIndex == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing fid or answerIndex"})
		return
	}

	result, err := h.service.SubmitAnswer(r.Context(), *req.FID, *req.AnswerIndex, req.Username)
	switch {
	case errors.Is(err, domain.ErrAlreadyPlayed):
		// Expected under normal use; answer with the stored state.
		status, statusErr := h.service.Status(r.Context(), *req.FID)
		if statusErr != nil {
			writeServiceError(w, statusErr)
			return
		}
		writeJSON(w, http.StatusBadRequest, alreadyPlayedResponse{
			Error:        "Already played today",
			User:         status.User,
			TodaysAnswer: status.TodaysAnswer,
		})
		return
	case errors.Is(err, domain.ErrInvalidAnswerIndex):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid answer index"})
		return
	case err != nil:
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, answerResponse{
		Success:       true,
		Correct:       result.Correct,
		CorrectAnswer: result.CorrectIndex,
		User:          result.User,
		FunFact:       result.FunFact,
	})
}

func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	entries, err := h.service.Leaderboard(r.Context(), leaderboardLimit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, leaderboardResponse{Leaderboard: entries})
}

func writeServiceError(w http.ResponseWriter, err error) {
	log.Printf("request failed: %v", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
}

func writeMethodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
