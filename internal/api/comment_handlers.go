package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/VarshiniKilaru09/quotes-project/internal/database"
)

// @Summary      Add comment form
// @Description  Returns the target quote id and the current timestamp for form prefill.
// @Tags         comments
// @Produce      json
// @Param        quoteId  path      string  true  "Quote ID"
// @Success      200      {object}  map[string]string
// @Router       /add_comment/{quoteId} [get]
func (s *Server) AddCommentPageHandler(w http.ResponseWriter, r *http.Request) {
	quoteID := chi.URLParam(r, "quoteId")
	currentDate := time.Now().Format("2006-01-02 15:04:05")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"quote_id": quoteID,
		"date":     currentDate,
	})
}

// @Summary      Add a comment
// @Description  Appends a comment to the quote's comment sequence. The public flag is derived from the mere presence of the 'public' form field. Commenting on a quote that does not exist is a silent no-op.
// @Tags         comments
// @Accept       x-www-form-urlencoded
// @Param        quoteId  path      string  true   "Quote ID"
// @Param        text     formData  string  true   "Comment text"
// @Param        author   formData  string  true   "Comment author"
// @Param        date     formData  string  false  "Date string"
// @Param        public   formData  string  false  "Checkbox; presence makes the comment public"
// @Success      302  {string}  string "Redirect to /quotes"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /add_comment/{quoteId} [post]
func (s *Server) AddCommentHandler(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	quoteID := chi.URLParam(r, "quoteId")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	text := r.PostForm.Get("text")
	author := r.PostForm.Get("author")
	date := r.PostForm.Get("date")
	_, isPublic := r.PostForm["public"]

	commentID, err := s.generateUniqueID(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	comment, err := s.store.AddComment(r.Context(), database.AddCommentParams{
		ID:      commentID,
		QuoteID: quoteID,
		Text:    text,
		Author:  author,
		Date:    date,
		Public:  isPublic,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// Target quote does not exist; mirror the original's no-op.
			http.Redirect(w, r, "/quotes", http.StatusFound)
			return
		}
		http.Error(w, "Failed to add comment", http.StatusInternalServerError)
		return
	}

	if err := s.store.LogEvent(r.Context(), session.Username, "comment_added", comment); err != nil {
		log.Printf("ERROR: Failed to log comment_added event: %v", err)
	}

	http.Redirect(w, r, "/quotes", http.StatusFound)
}

// @Summary      Edit a comment
// @Description  Replaces the text of the comment matched by both the quote id and the comment id. No ownership check (kept from the original, see DESIGN.md).
// @Tags         comments
// @Accept       x-www-form-urlencoded
// @Param        quoteId    path      string  true  "Quote ID"
// @Param        commentId  path      string  true  "Comment ID"
// @Param        new_text   formData  string  true  "New comment text"
// @Success      302  {string}  string "Redirect to /quotes"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /edit_comment/{quoteId}/{commentId} [post]
func (s *Server) EditCommentHandler(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	quoteID := chi.URLParam(r, "quoteId")
	commentID := chi.URLParam(r, "commentId")

	newText := r.FormValue("new_text")

	updated, err := s.store.UpdateCommentText(r.Context(), quoteID, commentID, newText)
	if err != nil {
		http.Error(w, "Failed to update comment", http.StatusInternalServerError)
		return
	}
	if updated {
		if err := s.store.LogEvent(r.Context(), session.Username, "comment_updated", map[string]string{
			"quote_id":   quoteID,
			"comment_id": commentID,
		}); err != nil {
			log.Printf("ERROR: Failed to log comment_updated event: %v", err)
		}
	}

	http.Redirect(w, r, "/quotes", http.StatusFound)
}

// @Summary      Delete a comment
// @Description  Removes the comment from the quote's sequence. An id not present on the quote is a no-op, not an error.
// @Tags         comments
// @Param        quoteId    path      string  true  "Quote ID"
// @Param        commentId  path      string  true  "Comment ID"
// @Success      302  {string}  string "Redirect to /quotes"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /delete_comment/{quoteId}/{commentId} [post]
func (s *Server) DeleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	quoteID := chi.URLParam(r, "quoteId")
	commentID := chi.URLParam(r, "commentId")

	deleted, err := s.store.DeleteComment(r.Context(), quoteID, commentID)
	if err != nil {
		http.Error(w, "Failed to delete comment", http.StatusInternalServerError)
		return
	}
	if deleted {
		if err := s.store.LogEvent(r.Context(), session.Username, "comment_deleted", map[string]string{
			"quote_id":   quoteID,
			"comment_id": commentID,
		}); err != nil {
			log.Printf("ERROR: Failed to log comment_deleted event: %v", err)
		}
	}

	http.Redirect(w, r, "/quotes", http.StatusFound)
}
