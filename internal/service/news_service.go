package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aditya/news-blog-platform/internal/config"
	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/aditya/news-blog-platform/internal/repository"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	newsAPIEndpoint     = "https://newsapi.org/v2/top-headlines?country=id&apiKey=%s"
	featuredNewsLimit   = 5
	latestNewsLimit     = 5
	defaultNewsPageSize = 10
	placeholderImageURL = "https://via.placeholder.com/300x200?text=No+Image"
)

type NewsService struct {
	news       repository.NewsRepository
	cfg        *config.Config
	httpClient *http.Client
}

func NewNewsService(news repository.NewsRepository, cfg *config.Config) *NewsService {
	return &NewsService{
		news: news,
		cfg:  cfg,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Page describes a paginated listing response.
type Page struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int64 `json:"pages"`
}

func newPage(total int64, page, limit int) Page {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return Page{Total: total, Page: page, Limit: limit, Pages: pages}
}

func normalizePaging(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultNewsPageSize
	}
	return page, limit, (page - 1) * limit
}

func (s *NewsService) GetAll(ctx context.Context, page, limit int) ([]*domain.News, Page, error) {
	page, limit, offset := normalizePaging(page, limit)
	news, total, err := s.news.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, Page{}, err
	}
	return news, newPage(total, page, limit), nil
}

func (s *NewsService) GetByCategory(ctx context.Context, category string, page, limit int) ([]*domain.News, Page, error) {
	page, limit, offset := normalizePaging(page, limit)
	news, total, err := s.news.GetByCategory(ctx, category, limit, offset)
	if err != nil {
		return nil, Page{}, err
	}
	return news, newPage(total, page, limit), nil
}

func (s *NewsService) GetFeatured(ctx context.Context) ([]*domain.News, error) {
	return s.news.GetFeatured(ctx, featuredNewsLimit)
}

func (s *NewsService) GetLatest(ctx context.Context) ([]*domain.News, error) {
	return s.news.GetLatest(ctx, latestNewsLimit)
}

func (s *NewsService) Search(ctx context.Context, query string, page, limit int) ([]*domain.News, Page, error) {
	if query == "" {
		return nil, Page{}, errValidation("search query is required")
	}
	page, limit, offset := normalizePaging(page, limit)
	news, total, err := s.news.Search(ctx, query, limit, offset)
	if err != nil {
		return nil, Page{}, err
	}
	return news, newPage(total, page, limit), nil
}

// GetByID returns the article and counts the view.
func (s *NewsService) GetByID(ctx context.Context, id uuid.UUID) (*domain.News, error) {
	news, err := s.news.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNewsNotFound
		}
		return nil, err
	}

	news.Views++
	if err := s.news.Update(ctx, news); err != nil {
		log.Errorf("ERROR [news.GetByID] failed to count view: %v", err)
	}
	return news, nil
}

type NewsInput struct {
	Title      string
	Content    string
	Summary    string
	ImageURL   string
	SourceURL  string
	SourceName string
	Category   string
	Author     string
	IsFeatured bool
}

func (s *NewsService) Create(ctx context.Context, input NewsInput) (*domain.News, error) {
	if input.Title == "" || input.Content == "" || input.Summary == "" ||
		input.ImageURL == "" || input.SourceURL == "" || input.Category == "" {
		return nil, errValidation("title, content, summary, image URL, source URL and category are required")
	}
	if !domain.IsValidNewsCategory(input.Category) {
		return nil, errValidation("unknown news category %q", input.Category)
	}

	news := &domain.News{
		ID:          uuid.New(),
		Title:       input.Title,
		Content:     input.Content,
		Summary:     input.Summary,
		ImageURL:    input.ImageURL,
		SourceURL:   input.SourceURL,
		SourceName:  input.SourceName,
		Category:    input.Category,
		PublishedAt: time.Now(),
		Author:      input.Author,
		IsFeatured:  input.IsFeatured,
	}
	if news.SourceName == "" {
		news.SourceName = "NewsAPI"
	}
	if news.Author == "" {
		news.Author = "Unknown"
	}

	if err := s.news.Create(ctx, news); err != nil {
		return nil, err
	}
	return news, nil
}

type UpdateNewsInput struct {
	Title      *string
	Content    *string
	Summary    *string
	ImageURL   *string
	Category   *string
	IsFeatured *bool
}

func (s *NewsService) Update(ctx context.Context, id uuid.UUID, input UpdateNewsInput) (*domain.News, error) {
	news, err := s.news.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNewsNotFound
		}
		return nil, err
	}

	if input.Title != nil {
		news.Title = *input.Title
	}
	if input.Content != nil {
		news.Content = *input.Content
	}
	if input.Summary != nil {
		news.Summary = *input.Summary
	}
	if input.ImageURL != nil {
		news.ImageURL = *input.ImageURL
	}
	if input.Category != nil {
		if !domain.IsValidNewsCategory(*input.Category) {
			return nil, errValidation("unknown news category %q", *input.Category)
		}
		news.Category = *input.Category
	}
	if input.IsFeatured != nil {
		news.IsFeatured = *input.IsFeatured
	}

	if err := s.news.Update(ctx, news); err != nil {
		return nil, err
	}
	return news, nil
}

func (s *NewsService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.news.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNewsNotFound
		}
		return err
	}
	return s.news.Delete(ctx, id)
}

type newsAPIResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
		Author      string `json:"author"`
		Source      struct {
			Name     string `json:"name"`
			Category string `json:"category"`
		} `json:"source"`
	} `json:"articles"`
}

// FetchFromAPI imports the current top headlines from the external news API
// and returns the number of stored articles.
func (s *NewsService) FetchFromAPI(ctx context.Context) (int, error) {
	if s.cfg.NewsAPIKey == "" {
		return 0, errValidation("news API key is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(newsAPIEndpoint, s.cfg.NewsAPIKey), nil)
	if err != nil {
		return 0, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("news API returned status %d", resp.StatusCode)
	}

	var payload newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to decode news API response: %w", err)
	}

	articles := make([]*domain.News, 0, len(payload.Articles))
	for _, article := range payload.Articles {
		content := article.Content
		if content == "" {
			content = article.Description
		}
		summary := article.Description
		if summary == "" {
			if len(content) > 150 {
				summary = content[:150] + "..."
			} else if content != "" {
				summary = content
			} else {
				summary = "No summary available"
			}
		}
		imageURL := article.URLToImage
		if imageURL == "" {
			imageURL = placeholderImageURL
		}
		sourceName := article.Source.Name
		if sourceName == "" {
			sourceName = "NewsAPI"
		}
		author := article.Author
		if author == "" {
			author = sourceName
		}

		publishedAt, err := time.Parse(time.RFC3339, article.PublishedAt)
		if err != nil {
			publishedAt = time.Now()
		}

		articles = append(articles, &domain.News{
			ID:          uuid.New(),
			Title:       article.Title,
			Content:     content,
			Summary:     summary,
			ImageURL:    imageURL,
			SourceURL:   article.URL,
			SourceName:  sourceName,
			Category:    mapExternalCategory(article.Source.Category),
			PublishedAt: publishedAt,
			Author:      author,
		})
	}

	if err := s.news.CreateMany(ctx, articles); err != nil {
		return 0, err
	}
	return len(articles), nil
}

func mapExternalCategory(category string) string {
	if domain.IsValidNewsCategory(category) {
		return category
	}
	return "other"
}
