// Package server exposes the chat engine over HTTP.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"tourli/internal/engine"
	"tourli/internal/model"
)

// Server is the HTTP front end over one engine instance
type Server struct {
	engine *engine.Engine
	cfg    model.ServerConfig

	// confidence floor below which answers are replaced by the
	// out-of-knowledge message
	threshold float64

	http *http.Server
}

// New builds a server with routes registered
func New(eng *engine.Engine, cfg model.ServerConfig, confidenceThreshold float64) *Server {
	s := &Server{
		engine:    eng,
		cfg:       cfg,
		threshold: confidenceThreshold,
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/chat", s.handleChat).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/init", s.handleInit).Methods(http.MethodPost)
	r.Use(corsMiddleware)

	s.http = &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

// Handler returns the routed handler, mainly for tests
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", s.cfg.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.WriteTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, chatResponse{
			Error:    "invalid JSON body",
			Response: "An error occurred processing your request.",
		})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusBadRequest, chatResponse{
			Error:    "Message cannot be empty",
			Response: "Please ask me something about Morocco travel!",
		})
		return
	}

	answers := s.engine.Answer(r.Context(), message, 1)
	if len(answers) == 0 {
		writeJSON(w, http.StatusOK, chatResponse{
			Response: "I apologize, but I don't have information about that. Please ask me something about Morocco tourism.",
			Success:  true,
		})
		return
	}

	text := answers[0].Text
	if answers[0].Score < s.threshold {
		text = "I apologize, that seems to be outside my knowledge base. I can only answer questions about Morocco tourism."
	}
	writeJSON(w, http.StatusOK, chatResponse{Response: text, Success: true})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "online",
		"message": "Tourli Chat API is running",
	})
}

// handleInit exists for front-end compatibility; the engine is built at
// startup so there is nothing left to warm up
func (s *Server) handleInit(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "initialized",
		"message": "Chatbot initialized successfully",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
