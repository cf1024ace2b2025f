package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/lehigh-university-libraries/circulation/internal/models"
)

func (h *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions := h.sessionStore.GetAll()
	sessionList := make([]models.SessionView, 0, len(sessions))
	for _, session := range sessions {
		sessionList = append(sessionList, session.View())
	}
	h.writeJSON(w, http.StatusOK, sessionList)
}

func (h *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	session := models.NewLibrarySession(uuid.NewString(), h.seed)
	h.sessionStore.Set(session.ID, session)

	slog.Info("Session created", "session_id", session.ID, "books", len(h.seed))
	h.writeJSON(w, http.StatusCreated, session.View())
}

func (h *Handler) HandleSessionDetail(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, session.View())
}

func (h *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.sessionStore.Delete(id) {
		h.writeError(w, "Session not found", http.StatusNotFound)
		return
	}
	slog.Info("Session deleted", "session_id", id)
	w.WriteHeader(http.StatusNoContent)
}
