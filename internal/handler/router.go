package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bloggers/bloggers-api/internal/middleware"
	"github.com/bloggers/bloggers-api/internal/service"
	"github.com/bloggers/bloggers-api/internal/validation"
)

// RouterConfig carries everything the HTTP surface depends on.
type RouterConfig struct {
	Blogs   *service.BlogService
	Posts   *service.PostService
	Users   *service.UserService
	Auth    *service.AuthService
	Testing *service.TestingService

	Tokens       middleware.TokenVerifier
	Admin        middleware.AdminCredentials
	LoginLimiter *middleware.IPRateLimiter
	CORSOrigins  []string
}

// NewRouter wires handlers, gates and validation into a chi router.
func NewRouter(cfg RouterConfig) http.Handler {
	blogs := NewBlogHandler(cfg.Blogs, cfg.Posts)
	posts := NewPostHandler(cfg.Posts)
	users := NewUserHandler(cfg.Users)
	auth := NewAuthHandler(cfg.Auth)
	diagnostics := NewTestingHandler(cfg.Testing)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("API is running"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.BasicAuth(cfg.Admin))

		r.Delete(middleware.DiagnosticPath, diagnostics.HandleDeleteAll)

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", blogs.HandleList)
			r.With(validation.Body(validation.BlogRules)).Post("/", blogs.HandleCreate)
			r.Get("/{id}", blogs.HandleGet)
			r.With(validation.Body(validation.BlogRules)).Put("/{id}", blogs.HandleUpdate)
			r.Delete("/{id}", blogs.HandleDelete)
			r.Get("/{id}/posts", blogs.HandleListPosts)
			r.With(validation.Body(validation.BlogPostRules)).Post("/{id}/posts", blogs.HandleCreatePost)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", posts.HandleList)
			r.With(validation.Body(validation.PostRules)).Post("/", posts.HandleCreate)
			r.Get("/{id}", posts.HandleGet)
			r.With(validation.Body(validation.PostRules)).Put("/{id}", posts.HandleUpdate)
			r.Delete("/{id}", posts.HandleDelete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", users.HandleList)
			r.With(validation.Body(validation.UserRules)).Post("/", users.HandleCreate)
			r.Delete("/{id}", users.HandleDelete)
		})
	})

	r.Route("/auth", func(r chi.Router) {
		r.With(middleware.RateLimit(cfg.LoginLimiter), validation.Body(validation.LoginRules)).Post("/login", auth.HandleLogin)
		r.With(middleware.BearerAuth(cfg.Tokens)).Get("/me", auth.HandleMe)
	})

	return r
}
