package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shaharia-lab/contactmail/internal/contact"
)

// Server holds all dependencies for the REST API handlers.
type Server struct {
	contactHandler *contact.Handler
	metrics        *Metrics
	logger         *slog.Logger
}

// New creates a new API Server backed by the provided contact handler.
func New(contactHandler *contact.Handler, metrics *Metrics, logger *slog.Logger) *Server {
	return &Server{
		contactHandler: contactHandler,
		metrics:        metrics,
		logger:         logger,
	}
}

// Mount registers all API routes under the given router.
func (s *Server) Mount(r chi.Router) {
	r.Post("/contact", s.handleContact)
	r.Get("/version", s.handleVersion)
}

// ─── Shared helpers ───────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeResponse(w http.ResponseWriter, resp contact.Response) {
	writeJSON(w, resp.StatusCode, resp.Body)
}
