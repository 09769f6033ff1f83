package service

import (
	"context"
	"errors"

	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/aditya/news-blog-platform/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BannerService struct {
	banners repository.BannerRepository
}

func NewBannerService(banners repository.BannerRepository) *BannerService {
	return &BannerService{banners: banners}
}

type BannerInput struct {
	ImageURL  string
	TargetURL string
	Position  string
	IsActive  *bool
}

func (s *BannerService) Create(ctx context.Context, input BannerInput) (*domain.Banner, error) {
	if input.ImageURL == "" || input.TargetURL == "" || input.Position == "" {
		return nil, errValidation("image URL, target URL and position are required")
	}
	if !domain.IsValidBannerPosition(input.Position) {
		return nil, errValidation("unknown banner position %q", input.Position)
	}

	banner := &domain.Banner{
		ID:        uuid.New(),
		ImageURL:  input.ImageURL,
		TargetURL: input.TargetURL,
		Position:  input.Position,
		IsActive:  true,
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}

	if err := s.banners.Create(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}

func (s *BannerService) GetAll(ctx context.Context) ([]*domain.Banner, error) {
	return s.banners.GetAll(ctx)
}

func (s *BannerService) GetActiveByPosition(ctx context.Context, position string) ([]*domain.Banner, error) {
	if !domain.IsValidBannerPosition(position) {
		return nil, errValidation("unknown banner position %q", position)
	}
	return s.banners.GetActiveByPosition(ctx, position)
}

func (s *BannerService) Update(ctx context.Context, id uuid.UUID, input BannerInput) (*domain.Banner, error) {
	banner, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ImageURL != "" {
		banner.ImageURL = input.ImageURL
	}
	if input.TargetURL != "" {
		banner.TargetURL = input.TargetURL
	}
	if input.Position != "" {
		if !domain.IsValidBannerPosition(input.Position) {
			return nil, errValidation("unknown banner position %q", input.Position)
		}
		banner.Position = input.Position
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}

	if err := s.banners.Update(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// Toggle flips the banner's active flag.
func (s *BannerService) Toggle(ctx context.Context, id uuid.UUID) (*domain.Banner, error) {
	banner, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	banner.IsActive = !banner.IsActive
	if err := s.banners.Update(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}

func (s *BannerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.getByID(ctx, id); err != nil {
		return err
	}
	return s.banners.Delete(ctx, id)
}

func (s *BannerService) getByID(ctx context.Context, id uuid.UUID) (*domain.Banner, error) {
	banner, err := s.banners.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBannerNotFound
		}
		return nil, err
	}
	return banner, nil
}
