package handlers

import (
	"net/http"

	"promptmaster/services"

	"github.com/gorilla/mux"
)

type LearnHandler struct {
	service *services.LearnService
}

func NewLearnHandler(service *services.LearnService) *LearnHandler {
	return &LearnHandler{service: service}
}

func (h *LearnHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/learn", h.GetContent).Methods("GET")
}

func (h *LearnHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, h.service.Content())
}
