package service

import (
	"context"
	"fmt"
	"log/slog"
)

// TestingService backs the diagnostic data-wipe endpoint.
type TestingService struct {
	stores Stores
}

func NewTestingService(stores Stores) *TestingService {
	return &TestingService{stores: stores}
}

// DeleteAll removes every post, blog and user.
func (s *TestingService) DeleteAll(ctx context.Context) error {
	if err := s.stores.Posts.DeleteAll(ctx); err != nil {
		return fmt.Errorf("deleting posts: %w", err)
	}
	if err := s.stores.Blogs.DeleteAll(ctx); err != nil {
		return fmt.Errorf("deleting blogs: %w", err)
	}
	if err := s.stores.Users.DeleteAll(ctx); err != nil {
		return fmt.Errorf("deleting users: %w", err)
	}
	slog.Info("all data deleted")
	return nil
}
