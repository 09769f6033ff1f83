package postgres

import (
	"context"

	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *favoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *favoriteRepository) Get(ctx context.Context, userID, postID uuid.UUID) (*domain.Favorite, error) {
	var favorite domain.Favorite
	err := r.db.WithContext(ctx).
		First(&favorite, "user_id = ? AND post_id = ?", userID, postID).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Favorite, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Favorite{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var favorites []*domain.Favorite
	err := r.db.WithContext(ctx).
		Preload("Post").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&favorites).Error
	if err != nil {
		return nil, 0, err
	}
	return favorites, total, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&domain.Favorite{}, "user_id = ? AND post_id = ?", userID, postID).Error
}
