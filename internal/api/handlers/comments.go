package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aditya/news-blog-platform/internal/api/middleware"
	"github.com/aditya/news-blog-platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type CreateCommentRequest struct {
	Content string `json:"content"`
	NewsID  string `json:"newsId"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

func (h *CommentHandler) GetByNews(w http.ResponseWriter, r *http.Request) {
	newsID, err := uuid.Parse(chi.URLParam(r, "newsId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid news ID")
		return
	}

	comments, err := h.commentService.GetByNewsID(r.Context(), newsID)
	if err != nil {
		respondServiceError(w, "comments.GetByNews", err)
		return
	}
	respondJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "please sign in again")
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	newsID, err := uuid.Parse(req.NewsID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid news ID")
		return
	}

	comment, err := h.commentService.Create(r.Context(), user.ID, newsID, req.Content)
	if err != nil {
		respondServiceError(w, "comments.Create", err)
		return
	}

	respondJSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "please sign in again")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid comment ID")
		return
	}

	var req UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.commentService.Update(r.Context(), id, user.ID, req.Content)
	if err != nil {
		respondServiceError(w, "comments.Update", err)
		return
	}

	respondJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "please sign in again")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid comment ID")
		return
	}

	if err := h.commentService.Delete(r.Context(), id, user.ID, user.Role); err != nil {
		respondServiceError(w, "comments.Delete", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "comment deleted"})
}
