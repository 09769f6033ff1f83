package postgres

import (
	"context"

	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bannerRepository struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) *bannerRepository {
	return &bannerRepository{db: db}
}

func (r *bannerRepository) Create(ctx context.Context, banner *domain.Banner) error {
	return r.db.WithContext(ctx).Create(banner).Error
}

func (r *bannerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Banner, error) {
	var banner domain.Banner
	err := r.db.WithContext(ctx).First(&banner, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepository) GetAll(ctx context.Context) ([]*domain.Banner, error) {
	var banners []*domain.Banner
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&banners).Error
	if err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *bannerRepository) GetActiveByPosition(ctx context.Context, position string) ([]*domain.Banner, error) {
	var banners []*domain.Banner
	err := r.db.WithContext(ctx).
		Where("position = ? AND is_active = ?", position, true).
		Order("created_at desc").
		Find(&banners).Error
	if err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *bannerRepository) Update(ctx context.Context, banner *domain.Banner) error {
	return r.db.WithContext(ctx).Save(banner).Error
}

func (r *bannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Banner{}, "id = ?", id).Error
}
