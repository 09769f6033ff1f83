package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/aditya/news-blog-platform/internal/repository"
	"github.com/aditya/news-blog-platform/internal/service"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type contextKey string

const userKey contextKey = "authUser"

// Auth is the session gate: it extracts the access token from the cookie
// (falling back to the Authorization header), verifies it, loads the current
// user and attaches it to the request context. The failure kinds map to
// distinct statuses: missing credential 401, failed verification 403,
// vanished user 404.
func Auth(tokens *service.TokenService, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				respondError(w, http.StatusUnauthorized, "please sign in again")
				return
			}

			claims, err := tokens.VerifyAccessToken(token)
			if err != nil {
				log.Errorf("ERROR [middleware.Auth] token verification failed: %v", err)
				respondError(w, http.StatusForbidden, "invalid or expired token")
				return
			}

			user, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					respondError(w, http.StatusNotFound, "user not found")
					return
				}
				log.Errorf("ERROR [middleware.Auth] failed to load user: %v", err)
				respondError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			user.Username = strings.TrimSpace(user.Username)
			user.FullName = strings.TrimSpace(user.FullName)
			user.Email = strings.TrimSpace(user.Email)

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin is the second-stage gate restricting a route to admins. It
// must run after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok || user.Role != domain.RoleAdmin {
			respondError(w, http.StatusUnauthorized, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUser returns the authenticated user attached by Auth.
func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
