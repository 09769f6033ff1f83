package service

import (
	"github.com/aditya/news-blog-platform/internal/cache"
	"github.com/aditya/news-blog-platform/internal/config"
	"github.com/aditya/news-blog-platform/internal/repository"
)

type Services struct {
	Token    *TokenService
	Auth     *AuthService
	Google   *GoogleOAuth
	Post     *PostService
	News     *NewsService
	Comment  *CommentService
	Favorite *FavoriteService
	Banner   *BannerService
	User     *UserService
	Profile  *ProfileService
}

func NewServices(repos *repository.Repositories, c *cache.Cache, cfg *config.Config) *Services {
	tokens := NewTokenService(cfg)
	return &Services{
		Token:    tokens,
		Auth:     NewAuthService(repos.User, tokens),
		Google:   NewGoogleOAuth(cfg),
		Post:     NewPostService(repos.Post, c),
		News:     NewNewsService(repos.News, cfg),
		Comment:  NewCommentService(repos.Comment, repos.News),
		Favorite: NewFavoriteService(repos.Favorite, repos.Post),
		Banner:   NewBannerService(repos.Banner),
		User:     NewUserService(repos.User),
		Profile:  NewProfileService(repos.User),
	}
}
