package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GoogleProfile is the verified identity assertion returned by Google's
// userinfo endpoint.
type GoogleProfile struct {
	ID     string
	Email  string
	Name   string
	Avatar string
}

// LinkGoogleAccount resolves an external identity onto exactly one local
// user: a single disjunctive lookup by Google id or email, then either a
// synthesized account (no password hash) or a link of the Google id onto an
// existing credential account. Linking the same identity twice resolves to
// the same user. The resolved user gets a fresh session.
func (s *AuthService) LinkGoogleAccount(ctx context.Context, profile GoogleProfile) (*AuthResult, error) {
	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))
	user, err := s.users.GetByGoogleIDOrEmail(ctx, profile.ID, profile.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	switch {
	case user == nil:
		user = synthesizeGoogleUser(profile)
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
	case user.GoogleID == nil:
		// Credential account linking a provider for the first time; matched
		// by verified email, so attach the id instead of duplicating
		googleID := profile.ID
		user.GoogleID = &googleID
		if err := s.users.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	return s.establishSession(ctx, user)
}

func synthesizeGoogleUser(profile GoogleProfile) *domain.User {
	fullName := profile.Name
	if runes := []rune(fullName); len(runes) > domain.FullNameMaxLength {
		fullName = string(runes[:domain.FullNameMaxLength])
	}

	username := profile.Email
	if at := strings.Index(username, "@"); at >= 0 {
		username = username[:at]
	}
	if username == "" {
		username = strings.Join(strings.Fields(profile.Name), "")
	}
	username = strings.ToLower(username)

	googleID := profile.ID
	return &domain.User{
		ID:       uuid.New(),
		Username: username,
		FullName: fullName,
		Email:    profile.Email,
		Avatar:   profile.Avatar,
		Role:     domain.RoleUser,
		GoogleID: &googleID,
	}
}
