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

func TestCommentService(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	commentService := service.NewCommentService(repos.Comment, repos.News)
	ctx := context.Background()

	author, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	admin, _ := testutil.NewUserBuilder().WithRole(domain.RoleAdmin).Build(t, testDB.DB)
	article := testutil.NewNewsBuilder().Build(t, testDB.DB)

	t.Run("create returns the comment with its author", func(t *testing.T) {
		comment, err := commentService.Create(ctx, author.ID, article.ID, "Great reporting.")
		require.NoError(t, err)
		require.NotNil(t, comment.User)
		assert.Equal(t, author.Username, comment.User.Username)
	})

	t.Run("create requires content and an existing article", func(t *testing.T) {
		_, err := commentService.Create(ctx, author.ID, article.ID, "")
		var vErr *service.ValidationError
		assert.ErrorAs(t, err, &vErr)

		_, err = commentService.Create(ctx, author.ID, uuid.New(), "Orphan comment.")
		assert.ErrorIs(t, err, domain.ErrNewsNotFound)
	})

	t.Run("only the author may update", func(t *testing.T) {
		comment, err := commentService.Create(ctx, author.ID, article.ID, "First draft.")
		require.NoError(t, err)

		_, err = commentService.Update(ctx, comment.ID, other.ID, "Hijacked.")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)

		updated, err := commentService.Update(ctx, comment.ID, author.ID, "Second draft.")
		require.NoError(t, err)
		assert.Equal(t, "Second draft.", updated.Content)
	})

	t.Run("author and admins may delete", func(t *testing.T) {
		comment, err := commentService.Create(ctx, author.ID, article.ID, "Short lived.")
		require.NoError(t, err)

		err = commentService.Delete(ctx, comment.ID, other.ID, domain.RoleUser)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)

		err = commentService.Delete(ctx, comment.ID, admin.ID, domain.RoleAdmin)
		require.NoError(t, err)

		err = commentService.Delete(ctx, comment.ID, author.ID, domain.RoleUser)
		assert.ErrorIs(t, err, domain.ErrCommentNotFound)
	})
}
