package service_test

import (
	"context"
	"testing"

	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/aditya/news-blog-platform/internal/repository/postgres"
	"github.com/aditya/news-blog-platform/internal/service"
	"github.com/aditya/news-blog-platform/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileService(t *testing.T) (*service.ProfileService, *testutil.TestDB) {
	t.Helper()
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	return service.NewProfileService(repos.User), testDB
}

func TestProfileService_UpdateFullName(t *testing.T) {
	profileService, testDB := newProfileService(t)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	tests := []struct {
		name     string
		fullName string
		wantErr  bool
	}{
		{name: "valid name", fullName: "Renamed User"},
		{name: "trimmed to valid", fullName: "  Tidy Name  "},
		{name: "too short", fullName: "ab", wantErr: true},
		{name: "too long", fullName: "This Name Is Way Too Long", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, err := profileService.UpdateFullName(ctx, user.ID, tt.fullName)

			if tt.wantErr {
				var vErr *service.ValidationError
				assert.ErrorAs(t, err, &vErr)
				return
			}

			require.NoError(t, err)
			assert.LessOrEqual(t, len(updated.FullName), domain.FullNameMaxLength)
			assert.GreaterOrEqual(t, len(updated.FullName), domain.FullNameMinLength)
		})
	}
}

func TestProfileService_ChangeUsername(t *testing.T) {
	profileService, testDB := newProfileService(t)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().WithUsername("originalname").Build(t, testDB.DB)
	testutil.NewUserBuilder().WithUsername("takenname").Build(t, testDB.DB)

	updated, err := profileService.ChangeUsername(ctx, user.ID, "FreshName")
	require.NoError(t, err)
	assert.Equal(t, "freshname", updated.Username)

	// Renaming to your own current name is allowed
	_, err = profileService.ChangeUsername(ctx, user.ID, "freshname")
	require.NoError(t, err)

	_, err = profileService.ChangeUsername(ctx, user.ID, "takenname")
	assert.ErrorIs(t, err, domain.ErrUsernameExists)
}

func TestProfileService_ChangePassword(t *testing.T) {
	profileService, testDB := newProfileService(t)
	ctx := context.Background()

	t.Run("credential account", func(t *testing.T) {
		user, rawPassword := testutil.NewUserBuilder().
			WithPassword("Oldpass1!").
			Build(t, testDB.DB)

		err := profileService.ChangePassword(ctx, user.ID, "Wrongpass1!", "Newpass1!")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

		err = profileService.ChangePassword(ctx, user.ID, rawPassword, "weak")
		var vErr *service.ValidationError
		assert.ErrorAs(t, err, &vErr)

		require.NoError(t, profileService.ChangePassword(ctx, user.ID, rawPassword, "Newpass1!"))

		// The old password no longer verifies
		err = profileService.ChangePassword(ctx, user.ID, rawPassword, "Another1!")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("google-only account sets a first password", func(t *testing.T) {
		googleID := "google-pw-test"
		user := &domain.User{
			ID:       uuid.New(),
			Username: "googleonly",
			FullName: "Google Only",
			Email:    "googleonly@example.com",
			Role:     domain.RoleUser,
			GoogleID: &googleID,
		}
		require.NoError(t, testDB.DB.Create(user).Error)

		// No current password required when no hash exists
		require.NoError(t, profileService.ChangePassword(ctx, user.ID, "", "Firstpass1!"))

		// From now on the stored password is enforced
		err := profileService.ChangePassword(ctx, user.ID, "", "Second1!")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
