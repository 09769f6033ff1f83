package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/aditya/news-blog-platform/internal/service"
	log "github.com/sirupsen/logrus"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondServiceError maps service-layer sentinels onto the HTTP taxonomy.
// Anything unrecognized is an internal error and gets logged with the caller
// tag.
func respondServiceError(w http.ResponseWriter, tag string, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, domain.ErrUsernameExists), errors.Is(err, domain.ErrEmailExists):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInvalidToken):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPostNotFound),
		errors.Is(err, domain.ErrNewsNotFound),
		errors.Is(err, domain.ErrCommentNotFound),
		errors.Is(err, domain.ErrBannerNotFound),
		errors.Is(err, domain.ErrNotFavorite):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		log.Errorf("ERROR [%s] %v", tag, err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
