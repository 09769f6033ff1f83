package service

import (
	"context"
	"errors"

	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/aditya/news-blog-platform/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FavoriteService struct {
	favorites repository.FavoriteRepository
	posts     repository.PostRepository
}

func NewFavoriteService(favorites repository.FavoriteRepository, posts repository.PostRepository) *FavoriteService {
	return &FavoriteService{favorites: favorites, posts: posts}
}

// Add marks a post as a favorite. Favoriting an already-favorited post is an
// idempotent success and returns the existing row.
func (s *FavoriteService) Add(ctx context.Context, userID, postID uuid.UUID) (*domain.Favorite, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}

	if existing, err := s.favorites.Get(ctx, userID, postID); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	favorite := &domain.Favorite{
		ID:     uuid.New(),
		UserID: userID,
		PostID: postID,
	}
	if err := s.favorites.Create(ctx, favorite); err != nil {
		// A concurrent Add can win the race on the unique index; resolve to
		// the row that made it in
		if existing, getErr := s.favorites.Get(ctx, userID, postID); getErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return favorite, nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID, postID uuid.UUID) error {
	if _, err := s.favorites.Get(ctx, userID, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFavorite
		}
		return err
	}
	return s.favorites.Delete(ctx, userID, postID)
}

func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID, page, limit int) ([]*domain.Favorite, Page, error) {
	page, limit, offset := normalizePaging(page, limit)
	favorites, total, err := s.favorites.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, Page{}, err
	}
	return favorites, newPage(total, page, limit), nil
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	_, err := s.favorites.Get(ctx, userID, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
