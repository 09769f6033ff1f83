package repository

import (
	"context"

	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*domain.User, error)
	// GetByGoogleIDOrEmail runs the single disjunctive lookup used by
	// identity linking.
	GetByGoogleIDOrEmail(ctx context.Context, googleID, email string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, refreshToken string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	GetAll(ctx context.Context) ([]*domain.Post, error)
	GetFeatured(ctx context.Context) ([]*domain.Post, error)
	GetLatest(ctx context.Context) ([]*domain.Post, error)
	GetByCategory(ctx context.Context, category string) ([]*domain.Post, error)
	GetByCategories(ctx context.Context, categories []string) ([]*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type NewsRepository interface {
	Create(ctx context.Context, news *domain.News) error
	CreateMany(ctx context.Context, news []*domain.News) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.News, error)
	GetAll(ctx context.Context, limit, offset int) ([]*domain.News, int64, error)
	GetByCategory(ctx context.Context, category string, limit, offset int) ([]*domain.News, int64, error)
	GetFeatured(ctx context.Context, limit int) ([]*domain.News, error)
	GetLatest(ctx context.Context, limit int) ([]*domain.News, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*domain.News, int64, error)
	Update(ctx context.Context, news *domain.News) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	GetByNewsID(ctx context.Context, newsID uuid.UUID) ([]*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *domain.Favorite) error
	Get(ctx context.Context, userID, postID uuid.UUID) (*domain.Favorite, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Favorite, int64, error)
	Delete(ctx context.Context, userID, postID uuid.UUID) error
}

type BannerRepository interface {
	Create(ctx context.Context, banner *domain.Banner) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Banner, error)
	GetAll(ctx context.Context) ([]*domain.Banner, error)
	GetActiveByPosition(ctx context.Context, position string) ([]*domain.Banner, error)
	Update(ctx context.Context, banner *domain.Banner) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	User     UserRepository
	Post     PostRepository
	News     NewsRepository
	Comment  CommentRepository
	Favorite FavoriteRepository
	Banner   BannerRepository
}
