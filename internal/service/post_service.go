package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/aditya/news-blog-platform/internal/cache"
	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/aditya/news-blog-platform/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var imageLinkPattern = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|webp)$`)

type PostService struct {
	posts repository.PostRepository
	cache *cache.Cache
}

func NewPostService(posts repository.PostRepository, c *cache.Cache) *PostService {
	return &PostService{posts: posts, cache: c}
}

type CreatePostInput struct {
	Title          string
	AuthorName     string
	ImageLink      string
	Categories     []string
	Description    string
	IsFeaturedPost bool
}

func (s *PostService) Create(ctx context.Context, authorID uuid.UUID, input CreatePostInput) (*domain.Post, error) {
	if input.Title == "" || input.AuthorName == "" || input.ImageLink == "" ||
		input.Description == "" || len(input.Categories) == 0 {
		return nil, errValidation("title, author name, image link, description and categories are required")
	}
	if !imageLinkPattern.MatchString(input.ImageLink) {
		return nil, errValidation("image link must point to a jpg, jpeg, png or webp file")
	}
	if len(input.Categories) > domain.MaxPostCategories {
		return nil, errValidation("a post can carry at most %d categories", domain.MaxPostCategories)
	}
	for _, category := range input.Categories {
		if !domain.IsValidCategory(category) {
			return nil, errValidation("unknown category %q", category)
		}
	}

	post := &domain.Post{
		ID:             uuid.New(),
		Title:          input.Title,
		AuthorName:     input.AuthorName,
		ImageLink:      input.ImageLink,
		Categories:     datatypes.NewJSONSlice(input.Categories),
		Description:    input.Description,
		IsFeaturedPost: input.IsFeaturedPost,
		TimeOfPost:     time.Now(),
		AuthorID:       authorID,
	}

	// Stale aggregates must be gone before the write is acknowledged
	s.cache.Invalidate(ctx, cache.PostKeys...)

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetAll(ctx context.Context) ([]*domain.Post, error) {
	var posts []*domain.Post
	if s.cache.Get(ctx, cache.KeyAllPosts, &posts) {
		return posts, nil
	}

	posts, err := s.posts.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Put(ctx, cache.KeyAllPosts, posts)
	return posts, nil
}

func (s *PostService) GetFeatured(ctx context.Context) ([]*domain.Post, error) {
	var posts []*domain.Post
	if s.cache.Get(ctx, cache.KeyFeaturedPosts, &posts) {
		return posts, nil
	}

	posts, err := s.posts.GetFeatured(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Put(ctx, cache.KeyFeaturedPosts, posts)
	return posts, nil
}

func (s *PostService) GetLatest(ctx context.Context) ([]*domain.Post, error) {
	var posts []*domain.Post
	if s.cache.Get(ctx, cache.KeyLatestPosts, &posts) {
		return posts, nil
	}

	posts, err := s.posts.GetLatest(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Put(ctx, cache.KeyLatestPosts, posts)
	return posts, nil
}

func (s *PostService) GetByCategory(ctx context.Context, category string) ([]*domain.Post, error) {
	if !domain.IsValidCategory(category) {
		return nil, errValidation("unknown category %q", category)
	}
	return s.posts.GetByCategory(ctx, category)
}

func (s *PostService) GetRelated(ctx context.Context, categories []string) ([]*domain.Post, error) {
	if len(categories) == 0 {
		return nil, errValidation("categories are required")
	}
	return s.posts.GetByCategories(ctx, categories)
}

func (s *PostService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

type UpdatePostInput struct {
	Title          *string
	ImageLink      *string
	Categories     []string
	Description    *string
	IsFeaturedPost *bool
}

// Update applies the partial update on behalf of userID; only the post's
// author may update it.
func (s *PostService) Update(ctx context.Context, id, userID uuid.UUID, input UpdatePostInput) (*domain.Post, error) {
	post, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, domain.ErrUnauthorized
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.ImageLink != nil {
		if !imageLinkPattern.MatchString(*input.ImageLink) {
			return nil, errValidation("image link must point to a jpg, jpeg, png or webp file")
		}
		post.ImageLink = *input.ImageLink
	}
	if input.Categories != nil {
		if len(input.Categories) > domain.MaxPostCategories {
			return nil, errValidation("a post can carry at most %d categories", domain.MaxPostCategories)
		}
		for _, category := range input.Categories {
			if !domain.IsValidCategory(category) {
				return nil, errValidation("unknown category %q", category)
			}
		}
		post.Categories = datatypes.NewJSONSlice(input.Categories)
	}
	if input.Description != nil {
		post.Description = *input.Description
	}
	if input.IsFeaturedPost != nil {
		post.IsFeaturedPost = *input.IsFeaturedPost
	}

	s.cache.Invalidate(ctx, cache.PostKeys...)

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes the post on behalf of userID; the author and admins may
// delete it.
func (s *PostService) Delete(ctx context.Context, id, userID uuid.UUID, role domain.Role) error {
	post, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorID != userID && role != domain.RoleAdmin {
		return domain.ErrUnauthorized
	}

	s.cache.Invalidate(ctx, cache.PostKeys...)

	return s.posts.Delete(ctx, id)
}
