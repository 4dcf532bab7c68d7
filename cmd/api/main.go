package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bloggers/bloggers-api/internal/config"
	"github.com/bloggers/bloggers-api/internal/crypto"
	"github.com/bloggers/bloggers-api/internal/handler"
	"github.com/bloggers/bloggers-api/internal/middleware"
	"github.com/bloggers/bloggers-api/internal/repository"
	"github.com/bloggers/bloggers-api/internal/repository/memory"
	"github.com/bloggers/bloggers-api/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, closeStores, err := openStores(ctx, cfg)
	if err != nil {
		slog.Error("storage unavailable", "storage", cfg.Storage, "error", err)
		os.Exit(1)
	}
	defer closeStores()

	hasher, err := crypto.NewHasher(cfg.PasswordHash)
	if err != nil {
		slog.Error("invalid password hash scheme", "error", err)
		os.Exit(1)
	}
	tokens := crypto.NewTokenService([]byte(cfg.JWTSecret), cfg.JWTExpiry)

	posts := service.NewPostService(stores.Posts, stores.Blogs)
	router := handler.NewRouter(handler.RouterConfig{
		Blogs:   service.NewBlogService(stores.Blogs),
		Posts:   posts,
		Users:   service.NewUserService(stores.Users, hasher),
		Auth:    service.NewAuthService(stores.Users, tokens),
		Testing: service.NewTestingService(stores),

		Tokens:       tokens,
		Admin:        middleware.AdminCredentials{Login: cfg.AdminLogin, Password: cfg.AdminPassword},
		LoginLimiter: middleware.NewIPRateLimiter(ctx, cfg.LoginRateLimit, cfg.LoginRateBurst),
		CORSOrigins:  cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "storage", cfg.Storage)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func setupLogger(cfg config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var h slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.IsProduction() {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))
}

// openStores returns MySQL repositories when configured and reachable. Outside
// production an unreachable database falls back to the in-memory repositories;
// in production it is an error.
func openStores(ctx context.Context, cfg config.Config) (service.Stores, func(), error) {
	if cfg.Storage == config.StorageMySQL {
		db, err := repository.Open(ctx, cfg.DatabaseDSN)
		if err == nil {
			stores := service.Stores{
				Blogs: repository.NewBlogRepository(db),
				Posts: repository.NewPostRepository(db),
				Users: repository.NewUserRepository(db),
			}
			return stores, func() { db.Close() }, nil
		}
		if cfg.IsProduction() {
			return service.Stores{}, nil, err
		}
		slog.Warn("database unavailable, falling back to in-memory storage", "error", err)
	}

	stores := service.Stores{
		Blogs: memory.NewBlogRepository(),
		Posts: memory.NewPostRepository(),
		Users: memory.NewUserRepository(),
	}
	return stores, func() {}, nil
}
