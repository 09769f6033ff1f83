package api

import (
	"net/http"

	"github.com/aditya/news-blog-platform/internal/api/handlers"
	"github.com/aditya/news-blog-platform/internal/api/middleware"
	"github.com/aditya/news-blog-platform/internal/config"
	"github.com/aditya/news-blog-platform/internal/repository"
	"github.com/aditya/news-blog-platform/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, repos *repository.Repositories, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS(cfg.FrontendURL))

	// Health check
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, services.Google, cfg)
	postHandler := handlers.NewPostHandler(services.Post)
	newsHandler := handlers.NewNewsHandler(services.News)
	commentHandler := handlers.NewCommentHandler(services.Comment)
	favoriteHandler := handlers.NewFavoriteHandler(services.Favorite)
	bannerHandler := handlers.NewBannerHandler(services.Banner)
	userHandler := handlers.NewUserHandler(services.User)
	profileHandler := handlers.NewProfileHandler(services.Profile)

	authRequired := middleware.Auth(services.Token, repos.User)

	r.Route("/api", func(r chi.Router) {
		// Auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/sign-up", authHandler.SignUp)
			r.Post("/sign-in", authHandler.SignIn)
			r.Get("/check/{userId}", authHandler.Check)
			r.Get("/google", authHandler.GoogleLogin)
			r.Get("/google/callback", authHandler.GoogleCallback)

			r.Group(func(r chi.Router) {
				r.Use(authRequired)
				r.Post("/sign-out", authHandler.SignOut)
			})
		})

		// Post routes
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", postHandler.GetAll)
			r.Get("/featured", postHandler.GetFeatured)
			r.Get("/latest", postHandler.GetLatest)
			r.Get("/categories/{category}", postHandler.GetByCategory)
			r.Get("/related", postHandler.GetRelated)
			r.Get("/{id}", postHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(authRequired)
				r.Post("/", postHandler.Create)
				r.Patch("/{id}", postHandler.Update)
				r.Delete("/{id}", postHandler.Delete)
			})
		})

		// News routes
		r.Route("/news", func(r chi.Router) {
			r.Get("/", newsHandler.GetAll)
			r.Get("/featured", newsHandler.GetFeatured)
			r.Get("/latest", newsHandler.GetLatest)
			r.Get("/search", newsHandler.Search)
			r.Get("/categories/{category}", newsHandler.GetByCategory)
			r.Get("/{id}", newsHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(authRequired)
				r.Use(middleware.RequireAdmin)
				r.Post("/", newsHandler.Create)
				r.Post("/fetch-from-api", newsHandler.FetchFromAPI)
				r.Patch("/{id}", newsHandler.Update)
				r.Delete("/{id}", newsHandler.Delete)
			})
		})

		// Comment routes
		r.Route("/comments", func(r chi.Router) {
			r.Get("/news/{newsId}", commentHandler.GetByNews)

			r.Group(func(r chi.Router) {
				r.Use(authRequired)
				r.Post("/", commentHandler.Create)
				r.Patch("/{id}", commentHandler.Update)
				r.Delete("/{id}", commentHandler.Delete)
			})
		})

		// Favorite routes
		r.Route("/favorites", func(r chi.Router) {
			r.Use(authRequired)
			r.Post("/", favoriteHandler.Add)
			r.Get("/", favoriteHandler.List)
			r.Get("/check/{postId}", favoriteHandler.Check)
			r.Delete("/{postId}", favoriteHandler.Remove)
		})

		// Banner routes
		r.Route("/banners", func(r chi.Router) {
			r.Get("/position/{position}", bannerHandler.GetActiveByPosition)

			r.Group(func(r chi.Router) {
				r.Use(authRequired)
				r.Use(middleware.RequireAdmin)
				r.Get("/", bannerHandler.GetAll)
				r.Post("/", bannerHandler.Create)
				r.Patch("/{id}", bannerHandler.Update)
				r.Patch("/{id}/toggle", bannerHandler.Toggle)
				r.Delete("/{id}", bannerHandler.Delete)
			})
		})

		// Admin user management
		r.Route("/user", func(r chi.Router) {
			r.Use(authRequired)
			r.Use(middleware.RequireAdmin)
			r.Get("/", userHandler.GetAll)
			r.Patch("/{userId}/role", userHandler.ChangeRole)
			r.Delete("/{userId}", userHandler.Delete)
		})

		// Profile routes
		r.Route("/profile", func(r chi.Router) {
			r.Use(authRequired)
			r.Get("/", profileHandler.Get)
			r.Patch("/update", profileHandler.Update)
			r.Patch("/username", profileHandler.ChangeUsername)
			r.Patch("/password", profileHandler.ChangePassword)
		})
	})

	return r
}
