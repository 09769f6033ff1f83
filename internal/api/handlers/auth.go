package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/aditya/news-blog-platform/internal/api/middleware"
	"github.com/aditya/news-blog-platform/internal/config"
	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/aditya/news-blog-platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	authService *service.AuthService
	google      *service.GoogleOAuth
	cfg         *config.Config
}

func NewAuthHandler(authService *service.AuthService, google *service.GoogleOAuth, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, google: google, cfg: cfg}
}

type SignUpRequest struct {
	Username string `json:"userName"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	UsernameOrEmail string `json:"userNameOrEmail"`
	Password        string `json:"password"`
}

type AuthResponse struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.authService.SignUp(r.Context(), service.SignUpInput{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondServiceError(w, "auth.SignUp", err)
		return
	}

	setAuthCookies(w, h.cfg, result.AccessToken, result.RefreshToken)
	respondJSON(w, http.StatusOK, AuthResponse{
		User:         result.User,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.authService.SignIn(r.Context(), service.SignInInput{
		UsernameOrEmail: req.UsernameOrEmail,
		Password:        req.Password,
	})
	if err != nil {
		respondServiceError(w, "auth.SignIn", err)
		return
	}

	setAuthCookies(w, h.cfg, result.AccessToken, result.RefreshToken)
	respondJSON(w, http.StatusOK, AuthResponse{
		User:         result.User,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "please sign in again")
		return
	}

	if err := h.authService.SignOut(r.Context(), user.ID); err != nil {
		respondServiceError(w, "auth.SignOut", err)
		return
	}

	clearAuthCookies(w, h.cfg)
	respondJSON(w, http.StatusOK, map[string]string{"message": "signed out"})
}

// Check runs the silent refresh flow: it confirms a still-valid access token
// or redeems the refresh token for a fresh pair.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "user ID is required")
		return
	}

	accessToken := cookieValue(r, accessTokenCookie)
	refreshToken := cookieValue(r, refreshTokenCookie)

	status, err := h.authService.CheckLoginStatus(r.Context(), userID, accessToken, refreshToken)
	if err != nil {
		respondServiceError(w, "auth.Check", err)
		return
	}

	if status.Refreshed {
		setAuthCookies(w, h.cfg, status.AccessToken, status.RefreshToken)
	}
	respondJSON(w, http.StatusOK, map[string]string{"accessToken": status.AccessToken})
}

// GoogleLogin redirects to Google's consent screen with a random state bound
// to a short-lived cookie.
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.google.Configured() {
		respondError(w, http.StatusServiceUnavailable, "google sign-in is not configured")
		return
	}

	state := randomState()
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   300,
	})
	http.Redirect(w, r, h.google.AuthCodeURL(state), http.StatusFound)
}

func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie(oauthStateCookie)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		respondError(w, http.StatusBadRequest, "invalid oauth state")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		respondError(w, http.StatusBadRequest, "missing authorization code")
		return
	}

	profile, err := h.google.Exchange(r.Context(), code)
	if err != nil {
		log.Errorf("ERROR [auth.GoogleCallback] code exchange failed: %v", err)
		respondError(w, http.StatusUnauthorized, "google sign-in failed")
		return
	}

	result, err := h.authService.LinkGoogleAccount(r.Context(), *profile)
	if err != nil {
		respondServiceError(w, "auth.GoogleCallback", err)
		return
	}

	setAuthCookies(w, h.cfg, result.AccessToken, result.RefreshToken)
	http.Redirect(w, r, h.cfg.FrontendURL, http.StatusFound)
}

func cookieValue(r *http.Request, name string) string {
	if cookie, err := r.Cookie(name); err == nil {
		return cookie.Value
	}
	return ""
}

func randomState() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
