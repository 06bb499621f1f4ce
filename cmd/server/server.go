package main

import (
	"fmt"
	"log"
	"net/http"

	"promptmaster/config"
	"promptmaster/handlers"
	"promptmaster/services"
	"promptmaster/services/gemini"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	geminiService := gemini.NewService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)

	sessionService := services.NewSessionService(geminiService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	builderHandler := handlers.NewBuilderHandler(sessionService)
	quizHandler := handlers.NewQuizHandler(sessionService)

	learnService := services.NewLearnService()
	learnHandler := handlers.NewLearnHandler(learnService)

	router := mux.NewRouter()

	router.Use(corsMiddleware)
	router.Use(jsonMiddleware)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("OPTIONS")

	sessionHandler.RegisterRoutes(router)
	builderHandler.RegisterRoutes(router)
	quizHandler.RegisterRoutes(router)
	learnHandler.RegisterRoutes(router)

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	addr := ":" + cfg.Port
	fmt.Printf("Server starting on port %s\n", cfg.Port)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}
