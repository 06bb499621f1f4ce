package handlers

import (
	"log"
	"net/http"

	"promptmaster/services"

	"github.com/gorilla/mux"
)

type SessionResponse struct {
	SessionID string `json:"session_id"`
}

type SessionHandler struct {
	sessions *services.SessionService
}

func NewSessionHandler(sessions *services.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/sessions", h.CreateSession).Methods("POST")
}

func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received session creation request")

	session := h.sessions.Create()
	writeJSONResponse(w, http.StatusCreated, SessionResponse{SessionID: session.ID})
}

// resolveSession looks up the session addressed by the {id} path variable,
// writing a 404 and returning nil when it does not exist.
func resolveSession(sessions *services.SessionService, w http.ResponseWriter, r *http.Request) *services.Session {
	id := mux.Vars(r)["id"]

	session, err := sessions.Get(id)
	if err != nil {
		log.Printf("[ERROR] Session lookup failed: %v", err)
		writeErrorResponse(w, http.StatusNotFound, "session not found")
		return nil
	}
	return session
}
