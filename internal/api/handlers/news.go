package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aditya/news-blog-platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type NewsHandler struct {
	newsService *service.NewsService
}

func NewNewsHandler(newsService *service.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

type NewsRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Summary    string `json:"summary"`
	ImageURL   string `json:"imageUrl"`
	SourceURL  string `json:"sourceUrl"`
	SourceName string `json:"sourceName"`
	Category   string `json:"category"`
	Author     string `json:"author"`
	IsFeatured bool   `json:"isFeatured"`
}

type UpdateNewsRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Summary    *string `json:"summary"`
	ImageURL   *string `json:"imageUrl"`
	Category   *string `json:"category"`
	IsFeatured *bool   `json:"isFeatured"`
}

type newsListResponse struct {
	News       interface{}  `json:"news"`
	Pagination service.Page `json:"pagination"`
}

func (h *NewsHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, limit := paging(r)
	news, pagination, err := h.newsService.GetAll(r.Context(), page, limit)
	if err != nil {
		respondServiceError(w, "news.GetAll", err)
		return
	}
	respondJSON(w, http.StatusOK, newsListResponse{News: news, Pagination: pagination})
}

func (h *NewsHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	page, limit := paging(r)
	news, pagination, err := h.newsService.GetByCategory(r.Context(), chi.URLParam(r, "category"), page, limit)
	if err != nil {
		respondServiceError(w, "news.GetByCategory", err)
		return
	}
	respondJSON(w, http.StatusOK, newsListResponse{News: news, Pagination: pagination})
}

func (h *NewsHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	news, err := h.newsService.GetFeatured(r.Context())
	if err != nil {
		respondServiceError(w, "news.GetFeatured", err)
		return
	}
	respondJSON(w, http.StatusOK, news)
}

func (h *NewsHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	news, err := h.newsService.GetLatest(r.Context())
	if err != nil {
		respondServiceError(w, "news.GetLatest", err)
		return
	}
	respondJSON(w, http.StatusOK, news)
}

func (h *NewsHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, limit := paging(r)
	news, pagination, err := h.newsService.Search(r.Context(), r.URL.Query().Get("q"), page, limit)
	if err != nil {
		respondServiceError(w, "news.Search", err)
		return
	}
	respondJSON(w, http.StatusOK, newsListResponse{News: news, Pagination: pagination})
}

func (h *NewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid news ID")
		return
	}

	news, err := h.newsService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, "news.Get", err)
		return
	}
	respondJSON(w, http.StatusOK, news)
}

func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req NewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	news, err := h.newsService.Create(r.Context(), service.NewsInput{
		Title:      req.Title,
		Content:    req.Content,
		Summary:    req.Summary,
		ImageURL:   req.ImageURL,
		SourceURL:  req.SourceURL,
		SourceName: req.SourceName,
		Category:   req.Category,
		Author:     req.Author,
		IsFeatured: req.IsFeatured,
	})
	if err != nil {
		respondServiceError(w, "news.Create", err)
		return
	}

	respondJSON(w, http.StatusCreated, news)
}

func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid news ID")
		return
	}

	var req UpdateNewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	news, err := h.newsService.Update(r.Context(), id, service.UpdateNewsInput{
		Title:      req.Title,
		Content:    req.Content,
		Summary:    req.Summary,
		ImageURL:   req.ImageURL,
		Category:   req.Category,
		IsFeatured: req.IsFeatured,
	})
	if err != nil {
		respondServiceError(w, "news.Update", err)
		return
	}

	respondJSON(w, http.StatusOK, news)
}

func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid news ID")
		return
	}

	if err := h.newsService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, "news.Delete", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "news article deleted"})
}

func (h *NewsHandler) FetchFromAPI(w http.ResponseWriter, r *http.Request) {
	count, err := h.newsService.FetchFromAPI(r.Context())
	if err != nil {
		respondServiceError(w, "news.FetchFromAPI", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "news articles fetched and saved",
		"count":   count,
	})
}

func paging(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return page, limit
}
