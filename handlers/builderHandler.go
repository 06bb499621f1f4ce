package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"promptmaster/models"
	"promptmaster/services"

	"github.com/gorilla/mux"
)

type BuilderHandler struct {
	sessions *services.SessionService
}

func NewBuilderHandler(sessions *services.SessionService) *BuilderHandler {
	return &BuilderHandler{sessions: sessions}
}

func (h *BuilderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/sessions/{id}/builder", h.GetState).Methods("GET")
	router.HandleFunc("/sessions/{id}/builder/draft", h.UpdateDraft).Methods("PUT")
	router.HandleFunc("/sessions/{id}/builder/run", h.Run).Methods("POST")
	router.HandleFunc("/sessions/{id}/builder/critique", h.Critique).Methods("POST")
	router.HandleFunc("/sessions/{id}/builder/optimize", h.Optimize).Methods("POST")
	router.HandleFunc("/sessions/{id}/builder/randomize", h.Randomize).Methods("POST")
}

func (h *BuilderHandler) GetState(w http.ResponseWriter, r *http.Request) {
	session := resolveSession(h.sessions, w, r)
	if session == nil {
		return
	}

	writeJSONResponse(w, http.StatusOK, session.Builder.State())
}

func (h *BuilderHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	session := resolveSession(h.sessions, w, r)
	if session == nil {
		return
	}

	var req models.DraftUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode draft update JSON: %v", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if !session.Builder.UpdateDraft(&req) {
		writeErrorResponse(w, http.StatusConflict, "an action is in flight; try again once it settles")
		return
	}

	writeJSONResponse(w, http.StatusOK, session.Builder.State())
}

func (h *BuilderHandler) Run(w http.ResponseWriter, r *http.Request) {
	session := resolveSession(h.sessions, w, r)
	if session == nil {
		return
	}

	log.Printf("[INFO] Received builder run request")
	session.Builder.Run(r.Context())
	writeJSONResponse(w, http.StatusOK, session.Builder.State())
}

func (h *BuilderHandler) Critique(w http.ResponseWriter, r *http.Request) {
	session := resolveSession(h.sessions, w, r)
	if session == nil {
		return
	}

	log.Printf("[INFO] Received builder critique request")
	session.Builder.Critique(r.Context())
	writeJSONResponse(w, http.StatusOK, session.Builder.State())
}

func (h *BuilderHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	session := resolveSession(h.sessions, w, r)
	if session == nil {
		return
	}

	log.Printf("[INFO] Received builder optimize request")
	session.Builder.Optimize(r.Context())
	writeJSONResponse(w, http.StatusOK, session.Builder.State())
}

func (h *BuilderHandler) Randomize(w http.ResponseWriter, r *http.Request) {
	session := resolveSession(h.sessions, w, r)
	if session == nil {
		return
	}

	log.Printf("[INFO] Received builder randomize request")
	session.Builder.Randomize(r.Context())
	writeJSONResponse(w, http.StatusOK, session.Builder.State())
}
