package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aditya/news-blog-platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type BannerHandler struct {
	bannerService *service.BannerService
}

func NewBannerHandler(bannerService *service.BannerService) *BannerHandler {
	return &BannerHandler{bannerService: bannerService}
}

type BannerRequest struct {
	ImageURL  string `json:"imageUrl"`
	TargetURL string `json:"targetUrl"`
	Position  string `json:"position"`
	IsActive  *bool  `json:"isActive"`
}

func (h *BannerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	banners, err := h.bannerService.GetAll(r.Context())
	if err != nil {
		respondServiceError(w, "banners.GetAll", err)
		return
	}
	respondJSON(w, http.StatusOK, banners)
}

func (h *BannerHandler) GetActiveByPosition(w http.ResponseWriter, r *http.Request) {
	banners, err := h.bannerService.GetActiveByPosition(r.Context(), chi.URLParam(r, "position"))
	if err != nil {
		respondServiceError(w, "banners.GetActiveByPosition", err)
		return
	}
	respondJSON(w, http.StatusOK, banners)
}

func (h *BannerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req BannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	banner, err := h.bannerService.Create(r.Context(), service.BannerInput{
		ImageURL:  req.ImageURL,
		TargetURL: req.TargetURL,
		Position:  req.Position,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondServiceError(w, "banners.Create", err)
		return
	}

	respondJSON(w, http.StatusCreated, banner)
}

func (h *BannerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid banner ID")
		return
	}

	var req BannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	banner, err := h.bannerService.Update(r.Context(), id, service.BannerInput{
		ImageURL:  req.ImageURL,
		TargetURL: req.TargetURL,
		Position:  req.Position,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondServiceError(w, "banners.Update", err)
		return
	}

	respondJSON(w, http.StatusOK, banner)
}

func (h *BannerHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid banner ID")
		return
	}

	banner, err := h.bannerService.Toggle(r.Context(), id)
	if err != nil {
		respondServiceError(w, "banners.Toggle", err)
		return
	}

	respondJSON(w, http.StatusOK, banner)
}

func (h *BannerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid banner ID")
		return
	}

	if err := h.bannerService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, "banners.Delete", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "banner deleted"})
}
