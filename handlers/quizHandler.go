package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"promptmaster/models"
	"promptmaster/services"

	"github.com/gorilla/mux"
)

type QuizHandler struct {
	sessions *services.SessionService
}

func NewQuizHandler(sessions *services.SessionService) *QuizHandler {
	return &QuizHandler{sessions: sessions}
}

func (h *QuizHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/sessions/{id}/quiz", h.GetState).Methods("GET")
	router.HandleFunc("/sessions/{id}/quiz/answer", h.Answer).Methods("POST")
	router.HandleFunc("/sessions/{id}/quiz/advance", h.Advance).Methods("POST")
	router.HandleFunc("/sessions/{id}/quiz/reset", h.Reset).Methods("POST")
	router.HandleFunc("/sessions/{id}/quiz/regenerate", h.Regenerate).Methods("POST")
}

func (h *QuizHandler) GetState(w http.ResponseWriter, r *http.Request) {
	session := resolveSession(h.sessions, w, r)
	if session == nil {
		return
	}

	writeJSONResponse(w, http.StatusOK, session.Quiz.State())
}

func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	session := resolveSession(h.sessions, w, r)
	if session == nil {
		return
	}

	var req models.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode answer JSON: %v", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	session.Quiz.Answer(req.Choice)
	writeJSONResponse(w, http.StatusOK, session.Quiz.State())
}

func (h *QuizHandler) Advance(w http.ResponseWriter, r *http.Request) {
	session := resolveSession(h.sessions, w, r)
	if session == nil {
		return
	}

	session.Quiz.Advance()
	writeJSONResponse(w, http.StatusOK, session.Quiz.State())
}

func (h *QuizHandler) Reset(w http.ResponseWriter, r *http.Request) {
	session := resolveSession(h.sessions, w, r)
	if session == nil {
		return
	}

	session.Quiz.Reset()
	writeJSONResponse(w, http.StatusOK, session.Quiz.State())
}

func (h *QuizHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	session := resolveSession(h.sessions, w, r)
	if session == nil {
		return
	}

	log.Printf("[INFO] Received quiz regeneration request")
	session.Quiz.Regenerate(r.Context())
	writeJSONResponse(w, http.StatusOK, session.Quiz.State())
}
