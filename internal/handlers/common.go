package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lehigh-university-libraries/circulation/internal/library"
	"github.com/lehigh-university-libraries/circulation/internal/models"
	"github.com/lehigh-university-libraries/circulation/internal/storage"
	"github.com/lehigh-university-libraries/circulation/internal/suggest"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	sessionStore *storage.SessionStore
	suggester    suggest.Source
	seed         []library.Book
	maxResults   int
}

// New creates a handler whose new sessions start from seed and whose
// lookups go to suggester.
func New(store *storage.SessionStore, suggester suggest.Source, seed []library.Book, maxResults int) *Handler {
	return &Handler{
		sessionStore: store,
		suggester:    suggester,
		seed:         seed,
		maxResults:   maxResults,
	}
}

// Register wires the API routes onto mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/sessions", h.HandleListSessions)
	mux.HandleFunc("POST /api/sessions", h.HandleCreateSession)
	mux.HandleFunc("GET /api/sessions/{id}", h.HandleSessionDetail)
	mux.HandleFunc("DELETE /api/sessions/{id}", h.HandleDeleteSession)
	mux.HandleFunc("GET /api/sessions/{id}/books", h.HandleListBooks)
	mux.HandleFunc("POST /api/sessions/{id}/books", h.HandleAddBook)
	mux.HandleFunc("POST /api/sessions/{id}/borrow", h.HandleBorrow)
	mux.HandleFunc("POST /api/sessions/{id}/return", h.HandleReturn)
	mux.HandleFunc("GET /api/sessions/{id}/suggestions", h.HandleSuggestions)
	mux.HandleFunc("POST /api/sessions/{id}/suggestions/accept", h.HandleAcceptSuggestion)
	mux.HandleFunc("GET /healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("Unable to write healthcheck", "err", err)
		}
	})
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	if code >= http.StatusInternalServerError {
		slog.Error(message)
	} else {
		slog.Debug("Request rejected", "status", code, "reason", message)
	}
	h.writeJSON(w, code, map[string]string{"error": message})
}

// writeOpError maps tracker and lookup errors onto HTTP status codes.
func (h *Handler) writeOpError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, library.ErrInvalidInput):
		code = http.StatusBadRequest
	case errors.Is(err, library.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, library.ErrAlreadyLoaned), errors.Is(err, library.ErrNotLoaned):
		code = http.StatusConflict
	case errors.Is(err, suggest.ErrLookup):
		code = http.StatusBadGateway
	}
	h.writeError(w, err.Error(), code)
}

func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// Session helpers
func (h *Handler) getSessionOrError(w http.ResponseWriter, r *http.Request) (*models.LibrarySession, bool) {
	session, exists := h.sessionStore.Get(r.PathValue("id"))
	if !exists {
		h.writeError(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}
