package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/aditya/news-blog-platform/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~.-]+@[a-z0-9](?:[a-z0-9-]*[a-z0-9])?(?:\.[a-z0-9](?:[a-z0-9-]*[a-z0-9])?)+$`)

// ValidationError marks a request that fails the boundary schema checks.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func errValidation(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

type AuthService struct {
	users  repository.UserRepository
	tokens *TokenService
}

func NewAuthService(users repository.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

type SignUpInput struct {
	Username string
	FullName string
	Email    string
	Password string
}

type SignInInput struct {
	UsernameOrEmail string
	Password        string
}

type AuthResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	fullName := strings.TrimSpace(input.FullName)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if err := validateSignUp(username, fullName, email, input.Password); err != nil {
		return nil, err
	}

	if existing, err := s.users.GetByUsernameOrEmail(ctx, username); err == nil && existing != nil {
		return nil, domain.ErrUsernameExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing, err := s.users.GetByUsernameOrEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrEmailExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleUser,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.establishSession(ctx, user)
}

func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	if input.UsernameOrEmail == "" || input.Password == "" {
		return nil, errValidation("username or email and password are required")
	}

	user, err := s.users.GetByUsernameOrEmail(ctx, strings.ToLower(strings.TrimSpace(input.UsernameOrEmail)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	// Google-only accounts carry no password hash and cannot sign in directly
	if user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.establishSession(ctx, user)
}

// SignOut clears the stored refresh token so the current refresh credential
// can no longer be redeemed.
func (s *AuthService) SignOut(ctx context.Context, userID uuid.UUID) error {
	return s.users.UpdateRefreshToken(ctx, userID, "")
}

// LoginStatus is the outcome of the silent refresh flow. When Refreshed is
// false the presented access token was still valid and is returned unchanged.
type LoginStatus struct {
	Refreshed    bool
	AccessToken  string
	RefreshToken string
}

// CheckLoginStatus implements silent session recovery: a valid access token
// passes through untouched; otherwise a valid refresh token matching the one
// stored on the user record mints and persists a fresh pair. Rotating the
// stored token invalidates any previously issued refresh token.
func (s *AuthService) CheckLoginStatus(ctx context.Context, userID uuid.UUID, accessToken, refreshToken string) (*LoginStatus, error) {
	if accessToken != "" {
		if _, err := s.tokens.VerifyAccessToken(accessToken); err == nil {
			return &LoginStatus{AccessToken: accessToken}, nil
		}
	}

	if refreshToken == "" {
		return nil, domain.ErrUnauthenticated
	}
	if _, err := s.tokens.VerifyRefreshToken(refreshToken); err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	// Single active refresh token per user: only the stored value is redeemable
	if user.RefreshToken != refreshToken {
		return nil, domain.ErrInvalidToken
	}

	result, err := s.establishSession(ctx, user)
	if err != nil {
		return nil, err
	}

	return &LoginStatus{
		Refreshed:    true,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	}, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// establishSession mints the token pair and rotates the stored refresh token.
// Two concurrent calls for the same user race on the refresh_token column and
// the last write wins.
func (s *AuthService) establishSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.IssueRefreshToken(user)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}
	user.RefreshToken = refreshToken

	return &AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func validateSignUp(username, fullName, email, password string) error {
	if username == "" || fullName == "" || email == "" || password == "" {
		return errValidation("username, full name, email and password are required")
	}
	if len(fullName) < domain.FullNameMinLength || len(fullName) > domain.FullNameMaxLength {
		return errValidation("full name must be between %d and %d characters", domain.FullNameMinLength, domain.FullNameMaxLength)
	}
	if !emailPattern.MatchString(email) {
		return errValidation("invalid email address")
	}
	return validatePassword(password)
}

func validatePassword(password string) error {
	if len(password) < domain.PasswordMinLength {
		return errValidation("password must be at least %d characters", domain.PasswordMinLength)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune("#?!@$%^&*-", r):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return errValidation("password must contain an uppercase letter, a lowercase letter, a digit and a special character")
	}
	return nil
}
