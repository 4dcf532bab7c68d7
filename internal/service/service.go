package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bloggers/bloggers-api/internal/model"
)

var (
	ErrBlogNotFound       = errors.New("blog not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid login or password")
)

// FieldError is a business rule failure scoped to one input field. Handlers
// report it in the same shape as a validation failure.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// BlogStore persists blogs.
type BlogStore interface {
	Create(ctx context.Context, blog *model.Blog) error
	GetByID(ctx context.Context, id string) (*model.Blog, error)
	List(ctx context.Context, q model.BlogQuery) ([]model.Blog, int, error)
	Update(ctx context.Context, blog *model.Blog) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// PostStore persists posts.
type PostStore interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.Post, error)
	List(ctx context.Context, q model.PostQuery) ([]model.Post, int, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// UserStore persists users.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByLoginOrEmail(ctx context.Context, value string) (*model.User, error)
	List(ctx context.Context, q model.UserQuery) ([]model.User, int, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// Stores groups the repositories the services share.
type Stores struct {
	Blogs BlogStore
	Posts PostStore
	Users UserStore
}

// newID returns a fresh resource identifier.
func newID() string {
	return uuid.NewString()
}

// timestamp returns the current time at the millisecond precision the
// database keeps.
func timestamp(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Millisecond)
}
