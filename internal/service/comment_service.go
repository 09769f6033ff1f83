package service

import (
	"context"
	"errors"

	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/aditya/news-blog-platform/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentService struct {
	comments repository.CommentRepository
	news     repository.NewsRepository
}

func NewCommentService(comments repository.CommentRepository, news repository.NewsRepository) *CommentService {
	return &CommentService{comments: comments, news: news}
}

func (s *CommentService) GetByNewsID(ctx context.Context, newsID uuid.UUID) ([]*domain.Comment, error) {
	return s.comments.GetByNewsID(ctx, newsID)
}

func (s *CommentService) Create(ctx context.Context, userID, newsID uuid.UUID, content string) (*domain.Comment, error) {
	if content == "" {
		return nil, errValidation("comment content is required")
	}

	if _, err := s.news.GetByID(ctx, newsID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNewsNotFound
		}
		return nil, err
	}

	comment := &domain.Comment{
		ID:      uuid.New(),
		Content: content,
		UserID:  userID,
		NewsID:  newsID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	// Reload with the author attached for the response
	return s.comments.GetByID(ctx, comment.ID)
}

// Update changes a comment's content; only the author may update it.
func (s *CommentService) Update(ctx context.Context, id, userID uuid.UUID, content string) (*domain.Comment, error) {
	if content == "" {
		return nil, errValidation("comment content is required")
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	if comment.UserID != userID {
		return nil, domain.ErrUnauthorized
	}

	comment.Content = content
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment; the author and admins may delete it.
func (s *CommentService) Delete(ctx context.Context, id, userID uuid.UUID, role domain.Role) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}
	if comment.UserID != userID && role != domain.RoleAdmin {
		return domain.ErrUnauthorized
	}

	return s.comments.Delete(ctx, id)
}
