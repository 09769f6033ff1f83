package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aditya/news-blog-platform/internal/api/middleware"
	"github.com/aditya/news-blog-platform/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
}

type ChangeUsernameRequest struct {
	Username string `json:"userName"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "please sign in again")
		return
	}

	profile, err := h.profileService.Get(r.Context(), user.ID)
	if err != nil {
		respondServiceError(w, "profile.Get", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"user": profile})
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "please sign in again")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.profileService.UpdateFullName(r.Context(), user.ID, req.FullName)
	if err != nil {
		respondServiceError(w, "profile.Update", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"user": profile})
}

func (h *ProfileHandler) ChangeUsername(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "please sign in again")
		return
	}

	var req ChangeUsernameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.profileService.ChangeUsername(r.Context(), user.ID, req.Username)
	if err != nil {
		respondServiceError(w, "profile.ChangeUsername", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"user": profile})
}

func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "please sign in again")
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.profileService.ChangePassword(r.Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(w, "profile.ChangePassword", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
