// Package http exposes the chat service over HTTP.
package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"careline-chatbot/internal/core"
	"careline-chatbot/pkg"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server bundles the dependencies required by the HTTP handlers.
type Server struct {
	Orchestrator *core.Orchestrator
	Logger       *zap.Logger
}

// NewServer constructs a Server.
func NewServer(orc *core.Orchestrator, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{Orchestrator: orc, Logger: logger}
}

// Routes builds the chi router with the service's middleware stack.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.Logger))

	r.Get("/health", s.handleHealth)
	r.Post("/api/chat", s.handleChat)
	return r
}

// handleChat processes one chat turn.  The session is selected by the
// X-Session-ID header, falling back to the session_id body field; clients
// that send neither share the default conversation.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req pkg.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	sessionID := r.Header.Get("X-Session-ID")
	if sessionID == "" {
		sessionID = req.SessionID
	}
	reply, sid := s.Orchestrator.HandleMessage(r.Context(), sessionID, req.Message)
	writeJSON(w, http.StatusOK, pkg.ChatResponse{Message: reply, SessionID: sid})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
