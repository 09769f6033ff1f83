package handlers

import (
	"net/http"

	"github.com/aditya/news-blog-platform/internal/config"
)

const (
	accessTokenCookie  = "access_token"
	refreshTokenCookie = "refresh_token"
)

// authCookie builds the HTTP-only token cookie. Development runs without TLS
// and needs SameSite=Lax; everywhere else the frontend lives on another
// origin, so SameSite=None with Secure.
func authCookie(cfg *config.Config, name, value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   maxAge,
		SameSite: http.SameSiteNoneMode,
		Secure:   true,
	}
	if cfg.IsDevelopment() {
		cookie.SameSite = http.SameSiteLaxMode
		cookie.Secure = false
	}
	return cookie
}

func setAuthCookies(w http.ResponseWriter, cfg *config.Config, accessToken, refreshToken string) {
	maxAge := int(cfg.CookieMaxAge.Seconds())
	http.SetCookie(w, authCookie(cfg, accessTokenCookie, accessToken, maxAge))
	http.SetCookie(w, authCookie(cfg, refreshTokenCookie, refreshToken, maxAge))
}

func clearAuthCookies(w http.ResponseWriter, cfg *config.Config) {
	http.SetCookie(w, authCookie(cfg, accessTokenCookie, "", -1))
	http.SetCookie(w, authCookie(cfg, refreshTokenCookie, "", -1))
}
