package handlers

import (
	"net/http"
	"strconv"

	"github.com/lehigh-university-libraries/circulation/internal/library"
)

type suggestionsResponse struct {
	Query       string         `json:"query"`
	Suggestions []library.Book `json:"suggestions"`
}

type acceptRequest struct {
	Index int `json:"index"`
}

// HandleSuggestions looks up candidates outside the session lock, then
// remembers them on the session for HandleAcceptSuggestion.
func (h *Handler) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}

	query := r.URL.Query().Get("q")
	limit := h.maxResults
	if raw := r.URL.Query().Get("max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.writeError(w, "max must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	found, err := h.suggester.Suggest(r.Context(), query, limit)
	if err != nil {
		h.writeOpError(w, err)
		return
	}
	if found == nil {
		found = []library.Book{}
	}

	session.SetSuggestions(found)
	h.writeJSON(w, http.StatusOK, suggestionsResponse{Query: query, Suggestions: found})
}

func (h *Handler) HandleAcceptSuggestion(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}

	var request acceptRequest
	if !h.decodeJSON(w, r, &request) {
		return
	}

	book, ok := session.Suggestion(request.Index)
	if !ok {
		h.writeError(w, "No suggestion at index "+strconv.Itoa(request.Index), http.StatusBadRequest)
		return
	}

	h.addBook(w, session, book)
}
