package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aditya/news-blog-platform/internal/api/middleware"
	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/aditya/news-blog-platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

type AddFavoriteRequest struct {
	PostID string `json:"postId"`
}

type favoriteListResponse struct {
	Favorites  []*domain.Post `json:"favorites"`
	Pagination service.Page   `json:"pagination"`
}

func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "please sign in again")
		return
	}

	var req AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	postID, err := uuid.Parse(req.PostID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "post ID is required")
		return
	}

	favorite, err := h.favoriteService.Add(r.Context(), user.ID, postID)
	if err != nil {
		respondServiceError(w, "favorites.Add", err)
		return
	}

	respondJSON(w, http.StatusCreated, favorite)
}

func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "please sign in again")
		return
	}

	postID, err := uuid.Parse(chi.URLParam(r, "postId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid post ID")
		return
	}

	if err := h.favoriteService.Remove(r.Context(), user.ID, postID); err != nil {
		respondServiceError(w, "favorites.Remove", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "post removed from favorites"})
}

func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "please sign in again")
		return
	}

	page, limit := paging(r)
	favorites, pagination, err := h.favoriteService.List(r.Context(), user.ID, page, limit)
	if err != nil {
		respondServiceError(w, "favorites.List", err)
		return
	}

	// The response carries the favorited posts, not the join rows
	posts := make([]*domain.Post, 0, len(favorites))
	for _, favorite := range favorites {
		if favorite.Post != nil {
			posts = append(posts, favorite.Post)
		}
	}
	respondJSON(w, http.StatusOK, favoriteListResponse{Favorites: posts, Pagination: pagination})
}

func (h *FavoriteHandler) Check(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "please sign in again")
		return
	}

	postID, err := uuid.Parse(chi.URLParam(r, "postId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid post ID")
		return
	}

	isFavorite, err := h.favoriteService.IsFavorite(r.Context(), user.ID, postID)
	if err != nil {
		respondServiceError(w, "favorites.Check", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"isFavorite": isFavorite})
}
