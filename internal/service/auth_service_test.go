package service_test

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/aditya/news-blog-platform/internal/repository/postgres"
	"github.com/aditya/news-blog-platform/internal/service"
	"github.com/aditya/news-blog-platform/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*service.AuthService, *service.TokenService, *testutil.TestDB) {
	t.Helper()
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	tokens := service.NewTokenService(cfg)
	return service.NewAuthService(repos.User, tokens), tokens, testDB
}

func TestAuthService_SignUp(t *testing.T) {
	authService, _, testDB := newAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     service.SignUpInput
		setup     func()
		wantErr   error
		checkUser bool
	}{
		{
			name: "successful sign up",
			input: service.SignUpInput{
				Username: "newuser",
				FullName: "New User",
				Email:    "new@example.com",
				Password: "Password1!",
			},
			checkUser: true,
		},
		{
			name: "username is lowercased",
			input: service.SignUpInput{
				Username: "MixedCase",
				FullName: "Mixed Case",
				Email:    "mixed@example.com",
				Password: "Password1!",
			},
			checkUser: true,
		},
		{
			name: "duplicate username",
			input: service.SignUpInput{
				Username: "existinguser",
				FullName: "Existing",
				Email:    "fresh@example.com",
				Password: "Password1!",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("existinguser").
					Build(t, testDB.DB)
			},
			wantErr: domain.ErrUsernameExists,
		},
		{
			name: "duplicate email",
			input: service.SignUpInput{
				Username: "freshuser",
				FullName: "Fresh User",
				Email:    "taken@example.com",
				Password: "Password1!",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("taken@example.com").
					Build(t, testDB.DB)
			},
			wantErr: domain.ErrEmailExists,
		},
		{
			name: "full name too long",
			input: service.SignUpInput{
				Username: "longname",
				FullName: "This Name Is Far Too Long",
				Email:    "longname@example.com",
				Password: "Password1!",
			},
			wantErr: &service.ValidationError{},
		},
		{
			name: "weak password",
			input: service.SignUpInput{
				Username: "weakpass",
				FullName: "Weak Pass",
				Email:    "weak@example.com",
				Password: "password",
			},
			wantErr: &service.ValidationError{},
		},
		{
			name: "invalid email",
			input: service.SignUpInput{
				Username: "bademail",
				FullName: "Bad Email",
				Email:    "not-an-email",
				Password: "Password1!",
			},
			wantErr: &service.ValidationError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			result, err := authService.SignUp(ctx, tt.input)

			if tt.wantErr != nil {
				if _, isValidation := tt.wantErr.(*service.ValidationError); isValidation {
					var vErr *service.ValidationError
					assert.ErrorAs(t, err, &vErr)
				} else {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}

			require.NoError(t, err)
			if tt.checkUser {
				assert.NotNil(t, result.User)
				assert.Equal(t, domain.RoleUser, result.User.Role)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
				// Usernames are stored normalized
				assert.Equal(t, strings.ToLower(strings.TrimSpace(tt.input.Username)), result.User.Username)
			}
		})
	}
}

func TestAuthService_SignIn(t *testing.T) {
	authService, _, testDB := newAuthService(t)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithUsername("loginuser").
		WithEmail("login@example.com").
		WithPassword("Correctpass1!").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.SignInInput
		wantErr error
	}{
		{
			name: "sign in with username",
			input: service.SignInInput{
				UsernameOrEmail: user.Username,
				Password:        rawPassword,
			},
		},
		{
			name: "sign in with email",
			input: service.SignInInput{
				UsernameOrEmail: user.Email,
				Password:        rawPassword,
			},
		},
		{
			name: "wrong password",
			input: service.SignInInput{
				UsernameOrEmail: user.Username,
				Password:        "Wrongpass1!",
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name: "non-existent user",
			input: service.SignInInput{
				UsernameOrEmail: "nonexistent",
				Password:        "Anypass1!",
			},
			wantErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.SignIn(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, result.User.ID)
			assert.NotEmpty(t, result.AccessToken)
			assert.NotEmpty(t, result.RefreshToken)
		})
	}
}

func TestAuthService_CheckLoginStatus(t *testing.T) {
	authService, _, _ := newAuthService(t)
	ctx := context.Background()

	result, err := authService.SignUp(ctx, service.SignUpInput{
		Username: "checkuser",
		FullName: "Check User",
		Email:    "check@example.com",
		Password: "Password1!",
	})
	require.NoError(t, err)
	userID := result.User.ID

	t.Run("valid access token passes through", func(t *testing.T) {
		status, err := authService.CheckLoginStatus(ctx, userID, result.AccessToken, result.RefreshToken)
		require.NoError(t, err)
		assert.False(t, status.Refreshed)
		assert.Equal(t, result.AccessToken, status.AccessToken)
	})

	t.Run("no tokens", func(t *testing.T) {
		_, err := authService.CheckLoginStatus(ctx, userID, "", "")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("garbage refresh token", func(t *testing.T) {
		_, err := authService.CheckLoginStatus(ctx, userID, "", "notavalidjwt")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := authService.CheckLoginStatus(ctx, uuid.New(), "", result.RefreshToken)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("refresh rotates and invalidates the old token", func(t *testing.T) {
		oldRefresh := result.RefreshToken

		status, err := authService.CheckLoginStatus(ctx, userID, "", oldRefresh)
		require.NoError(t, err)
		assert.True(t, status.Refreshed)
		assert.NotEmpty(t, status.AccessToken)
		assert.NotEmpty(t, status.RefreshToken)
		assert.NotEqual(t, oldRefresh, status.RefreshToken)

		// The redeemed token no longer matches the stored one
		_, err = authService.CheckLoginStatus(ctx, userID, "", oldRefresh)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)

		// The rotated token still works
		next, err := authService.CheckLoginStatus(ctx, userID, "", status.RefreshToken)
		require.NoError(t, err)
		assert.True(t, next.Refreshed)
	})
}

func TestAuthService_SignOut(t *testing.T) {
	authService, _, _ := newAuthService(t)
	ctx := context.Background()

	result, err := authService.SignUp(ctx, service.SignUpInput{
		Username: "logoutuser",
		FullName: "Logout User",
		Email:    "logout@example.com",
		Password: "Password1!",
	})
	require.NoError(t, err)

	require.NoError(t, authService.SignOut(ctx, result.User.ID))

	// The previously issued refresh token can no longer be redeemed
	_, err = authService.CheckLoginStatus(ctx, result.User.ID, "", result.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	// Signing out again is a no-op
	require.NoError(t, authService.SignOut(ctx, result.User.ID))
}

func TestAuthService_LinkGoogleAccount(t *testing.T) {
	authService, _, testDB := newAuthService(t)
	ctx := context.Background()

	t.Run("new identity creates an account", func(t *testing.T) {
		testDB.Truncate(t)

		profile := service.GoogleProfile{
			ID:    "google-id-1",
			Email: "fresh@example.com",
			Name:  "Fresh Person",
		}

		result, err := authService.LinkGoogleAccount(ctx, profile)
		require.NoError(t, err)
		assert.Equal(t, "fresh", result.User.Username)
		assert.Equal(t, "Fresh Person", result.User.FullName)
		require.NotNil(t, result.User.GoogleID)
		assert.Equal(t, profile.ID, *result.User.GoogleID)
		assert.Empty(t, result.User.PasswordHash)

		// Linking the same identity again resolves to the same user
		again, err := authService.LinkGoogleAccount(ctx, profile)
		require.NoError(t, err)
		assert.Equal(t, result.User.ID, again.User.ID)

		var count int64
		testDB.DB.Model(&domain.User{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("email match links onto a credential account", func(t *testing.T) {
		testDB.Truncate(t)

		existing, _ := testutil.NewUserBuilder().
			WithEmail("shared@example.com").
			Build(t, testDB.DB)

		result, err := authService.LinkGoogleAccount(ctx, service.GoogleProfile{
			ID:    "google-id-2",
			Email: "shared@example.com",
			Name:  "Shared Person",
		})
		require.NoError(t, err)
		assert.Equal(t, existing.ID, result.User.ID)
		require.NotNil(t, result.User.GoogleID)
		assert.Equal(t, "google-id-2", *result.User.GoogleID)

		var count int64
		testDB.DB.Model(&domain.User{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("long display name is truncated", func(t *testing.T) {
		testDB.Truncate(t)

		result, err := authService.LinkGoogleAccount(ctx, service.GoogleProfile{
			ID:    "google-id-3",
			Email: "longname@example.com",
			Name:  "An Extremely Long Display Name",
		})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(result.User.FullName), domain.FullNameMaxLength)
	})

	t.Run("truncation keeps multi-byte names valid", func(t *testing.T) {
		testDB.Truncate(t)

		result, err := authService.LinkGoogleAccount(ctx, service.GoogleProfile{
			ID:    "google-id-4",
			Email: "accents@example.com",
			Name:  "Aaaaaaaaaaaaaaé Bé",
		})
		require.NoError(t, err)
		assert.True(t, utf8.ValidString(result.User.FullName))
		assert.Equal(t, domain.FullNameMaxLength, len([]rune(result.User.FullName)))
	})

	t.Run("mixed-case profile email is normalized", func(t *testing.T) {
		testDB.Truncate(t)

		result, err := authService.LinkGoogleAccount(ctx, service.GoogleProfile{
			ID:    "google-id-5",
			Email: "John.Doe@Gmail.com",
			Name:  "John Doe",
		})
		require.NoError(t, err)
		assert.Equal(t, "john.doe", result.User.Username)
		assert.Equal(t, "john.doe@gmail.com", result.User.Email)
	})

	t.Run("mixed-case email matches an existing credential account", func(t *testing.T) {
		testDB.Truncate(t)

		existing, _ := testutil.NewUserBuilder().
			WithEmail("casey@example.com").
			Build(t, testDB.DB)

		result, err := authService.LinkGoogleAccount(ctx, service.GoogleProfile{
			ID:    "google-id-6",
			Email: "Casey@Example.COM",
			Name:  "Casey",
		})
		require.NoError(t, err)
		assert.Equal(t, existing.ID, result.User.ID)

		var count int64
		testDB.DB.Model(&domain.User{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})
}
