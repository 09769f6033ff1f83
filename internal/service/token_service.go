package service

import (
	"fmt"
	"time"

	"github.com/aditya/news-blog-platform/internal/config"
	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the decoded identity carried by both token classes.
// Role reflects the user's role at issuance time; a role change only takes
// effect on the next refresh.
type TokenClaims struct {
	UserID   uuid.UUID
	Username string
	Email    string
	Role     domain.Role
}

// TokenService mints and verifies access and refresh JWTs. The two classes
// are signed with distinct secrets so a leaked access secret cannot forge
// refresh tokens.
type TokenService struct {
	cfg *config.Config
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{cfg: cfg}
}

func (s *TokenService) IssueAccessToken(user *domain.User) (string, error) {
	return s.issue(user, s.cfg.AccessTokenSecret, s.cfg.AccessTokenTTL)
}

func (s *TokenService) IssueRefreshToken(user *domain.User) (string, error) {
	return s.issue(user, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenTTL)
}

func (s *TokenService) issue(user *domain.User, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID.String(),
		"username": user.Username,
		"email":    user.Email,
		"role":     string(user.Role),
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *TokenService) VerifyAccessToken(tokenString string) (*TokenClaims, error) {
	return s.verify(tokenString, s.cfg.AccessTokenSecret)
}

func (s *TokenService) VerifyRefreshToken(tokenString string) (*TokenClaims, error) {
	return s.verify(tokenString, s.cfg.RefreshTokenSecret)
}

func (s *TokenService) verify(tokenString, secret string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &TokenClaims{
		UserID:   userID,
		Username: username,
		Email:    email,
		Role:     domain.Role(role),
	}, nil
}
