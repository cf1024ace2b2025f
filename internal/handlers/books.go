package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/circulation/internal/library"
	"github.com/lehigh-university-libraries/circulation/internal/models"
)

type titleRequest struct {
	Title string `json:"title"`
}

type addBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	// Year is a number or a published-date string.
	Year any `json:"year"`
}

type addBookResponse struct {
	Added bool         `json:"added"`
	Book  library.Book `json:"book"`
}

func (h *Handler) HandleListBooks(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}

	availableOnly, _ := strconv.ParseBool(r.URL.Query().Get("available"))
	query := r.URL.Query().Get("q")

	h.writeJSON(w, http.StatusOK, session.Search(query, availableOnly))
}

func (h *Handler) HandleAddBook(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}

	var request addBookRequest
	if !h.decodeJSON(w, r, &request) {
		return
	}

	book := library.Book{
		Title:  strings.TrimSpace(request.Title),
		Author: strings.TrimSpace(request.Author),
		Year:   yearFrom(request.Year),
	}
	h.addBook(w, session, book)
}

// addBook runs the add under the session lock and writes the response.
// 201 means the catalog grew, 200 means the title was already there.
func (h *Handler) addBook(w http.ResponseWriter, session *models.LibrarySession, book library.Book) {
	var added bool
	err := session.Do(func(t *library.Tracker) error {
		var err error
		book, added, err = t.Add(book)
		return err
	})
	if err != nil {
		h.writeOpError(w, err)
		return
	}

	code := http.StatusOK
	if added {
		code = http.StatusCreated
		slog.Info("Book added to catalog", "session_id", session.ID, "title", book.Title)
	}
	h.writeJSON(w, code, addBookResponse{Added: added, Book: book})
}

func (h *Handler) HandleBorrow(w http.ResponseWriter, r *http.Request) {
	h.handleLoan(w, r, (*library.Tracker).Borrow, "borrowed")
}

func (h *Handler) HandleReturn(w http.ResponseWriter, r *http.Request) {
	h.handleLoan(w, r, (*library.Tracker).Return, "returned")
}

func (h *Handler) handleLoan(w http.ResponseWriter, r *http.Request, op func(*library.Tracker, string) (library.Receipt, error), action string) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}

	var request titleRequest
	if !h.decodeJSON(w, r, &request) {
		return
	}

	var receipt library.Receipt
	err := session.Do(func(t *library.Tracker) error {
		var err error
		receipt, err = op(t, request.Title)
		return err
	})
	if err != nil {
		h.writeOpError(w, err)
		return
	}

	slog.Info("Book "+action, "session_id", session.ID, "title", receipt.Title)
	h.writeJSON(w, http.StatusOK, receipt)
}

func yearFrom(v any) int {
	switch year := v.(type) {
	case float64:
		return library.YearFromNumber(year)
	case string:
		return library.ParseYear(year)
	default:
		return 0
	}
}
