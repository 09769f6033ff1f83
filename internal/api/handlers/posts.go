package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aditya/news-blog-platform/internal/api/middleware"
	"github.com/aditya/news-blog-platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

type CreatePostRequest struct {
	Title          string   `json:"title"`
	AuthorName     string   `json:"authorName"`
	ImageLink      string   `json:"imageLink"`
	Categories     []string `json:"categories"`
	Description    string   `json:"description"`
	IsFeaturedPost bool     `json:"isFeaturedPost"`
}

type UpdatePostRequest struct {
	Title          *string  `json:"title"`
	ImageLink      *string  `json:"imageLink"`
	Categories     []string `json:"categories"`
	Description    *string  `json:"description"`
	IsFeaturedPost *bool    `json:"isFeaturedPost"`
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "please sign in again")
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.postService.Create(r.Context(), user.ID, service.CreatePostInput{
		Title:          req.Title,
		AuthorName:     req.AuthorName,
		ImageLink:      req.ImageLink,
		Categories:     req.Categories,
		Description:    req.Description,
		IsFeaturedPost: req.IsFeaturedPost,
	})
	if err != nil {
		respondServiceError(w, "posts.Create", err)
		return
	}

	respondJSON(w, http.StatusOK, post)
}

func (h *PostHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.GetAll(r.Context())
	if err != nil {
		respondServiceError(w, "posts.GetAll", err)
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.GetFeatured(r.Context())
	if err != nil {
		respondServiceError(w, "posts.GetFeatured", err)
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.GetLatest(r.Context())
	if err != nil {
		respondServiceError(w, "posts.GetLatest", err)
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.GetByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		respondServiceError(w, "posts.GetByCategory", err)
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	categories := r.URL.Query()["categories"]
	posts, err := h.postService.GetRelated(r.Context(), categories)
	if err != nil {
		respondServiceError(w, "posts.GetRelated", err)
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid post ID")
		return
	}

	post, err := h.postService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, "posts.Get", err)
		return
	}
	respondJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "please sign in again")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid post ID")
		return
	}

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.postService.Update(r.Context(), id, user.ID, service.UpdatePostInput{
		Title:          req.Title,
		ImageLink:      req.ImageLink,
		Categories:     req.Categories,
		Description:    req.Description,
		IsFeaturedPost: req.IsFeaturedPost,
	})
	if err != nil {
		respondServiceError(w, "posts.Update", err)
		return
	}

	respondJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "please sign in again")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid post ID")
		return
	}

	if err := h.postService.Delete(r.Context(), id, user.ID, user.Role); err != nil {
		respondServiceError(w, "posts.Delete", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}
