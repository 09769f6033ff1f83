package postgres

import (
	"context"

	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *newsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(ctx context.Context, news *domain.News) error {
	return r.db.WithContext(ctx).Create(news).Error
}

func (r *newsRepository) CreateMany(ctx context.Context, news []*domain.News) error {
	if len(news) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(news).Error
}

func (r *newsRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.News, error) {
	var news domain.News
	err := r.db.WithContext(ctx).First(&news, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

func (r *newsRepository) GetAll(ctx context.Context, limit, offset int) ([]*domain.News, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.News{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var news []*domain.News
	err := r.db.WithContext(ctx).
		Order("published_at desc").
		Limit(limit).
		Offset(offset).
		Find(&news).Error
	if err != nil {
		return nil, 0, err
	}
	return news, total, nil
}

func (r *newsRepository) GetByCategory(ctx context.Context, category string, limit, offset int) ([]*domain.News, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.News{}).Where("category = ?", category).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var news []*domain.News
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("published_at desc").
		Limit(limit).
		Offset(offset).
		Find(&news).Error
	if err != nil {
		return nil, 0, err
	}
	return news, total, nil
}

func (r *newsRepository) GetFeatured(ctx context.Context, limit int) ([]*domain.News, error) {
	var news []*domain.News
	err := r.db.WithContext(ctx).
		Where("is_featured = ?", true).
		Order("published_at desc").
		Limit(limit).
		Find(&news).Error
	if err != nil {
		return nil, err
	}
	return news, nil
}

func (r *newsRepository) GetLatest(ctx context.Context, limit int) ([]*domain.News, error) {
	var news []*domain.News
	err := r.db.WithContext(ctx).
		Order("published_at desc").
		Limit(limit).
		Find(&news).Error
	if err != nil {
		return nil, err
	}
	return news, nil
}

// Search matches the query as a case-insensitive substring of title or summary.
func (r *newsRepository) Search(ctx context.Context, query string, limit, offset int) ([]*domain.News, int64, error) {
	pattern := "%" + query + "%"
	matcher := r.db.WithContext(ctx).Model(&domain.News{}).
		Where("title ILIKE ? OR summary ILIKE ?", pattern, pattern)

	var total int64
	if err := matcher.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var news []*domain.News
	err := r.db.WithContext(ctx).
		Where("title ILIKE ? OR summary ILIKE ?", pattern, pattern).
		Order("published_at desc").
		Limit(limit).
		Offset(offset).
		Find(&news).Error
	if err != nil {
		return nil, 0, err
	}
	return news, total, nil
}

func (r *newsRepository) Update(ctx context.Context, news *domain.News) error {
	return r.db.WithContext(ctx).Save(news).Error
}

func (r *newsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.News{}, "id = ?", id).Error
}
