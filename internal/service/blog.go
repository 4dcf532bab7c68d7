package service

import (
	"context"
	"errors"
	"time"

	"github.com/bloggers/bloggers-api/internal/model"
	"github.com/bloggers/bloggers-api/internal/repository"
)

// BlogService handles blog business logic.
type BlogService struct {
	blogs BlogStore
	now   func() time.Time
}

// NewBlogService creates a new BlogService.
func NewBlogService(blogs BlogStore) *BlogService {
	return &BlogService{blogs: blogs, now: time.Now}
}

func (s *BlogService) Create(ctx context.Context, req model.BlogRequest) (model.BlogResponse, error) {
	blog := &model.Blog{
		ID:          newID(),
		Name:        req.Name,
		Description: req.Description,
		WebsiteURL:  req.WebsiteURL,
		CreatedAt:   timestamp(s.now),
	}
	if err := s.blogs.Create(ctx, blog); err != nil {
		return model.BlogResponse{}, err
	}
	return toBlogResponse(*blog), nil
}

func (s *BlogService) Get(ctx context.Context, id string) (model.BlogResponse, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return model.BlogResponse{}, blogErr(err)
	}
	return toBlogResponse(*blog), nil
}

func (s *BlogService) List(ctx context.Context, q model.BlogQuery) (model.Page[model.BlogResponse], error) {
	blogs, total, err := s.blogs.List(ctx, q)
	if err != nil {
		return model.Page[model.BlogResponse]{}, err
	}
	items := make([]model.BlogResponse, 0, len(blogs))
	for _, b := range blogs {
		items = append(items, toBlogResponse(b))
	}
	return model.NewPage(q.PageQuery, total, items), nil
}

func (s *BlogService) Update(ctx context.Context, id string, req model.BlogRequest) error {
	err := s.blogs.Update(ctx, &model.Blog{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		WebsiteURL:  req.WebsiteURL,
	})
	return blogErr(err)
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	return blogErr(s.blogs.Delete(ctx, id))
}

func blogErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrBlogNotFound
	}
	return err
}

func toBlogResponse(b model.Blog) model.BlogResponse {
	return model.BlogResponse{
		ID:           b.ID,
		Name:         b.Name,
		Description:  b.Description,
		WebsiteURL:   b.WebsiteURL,
		CreatedAt:    b.CreatedAt,
		IsMembership: b.IsMembership,
	}
}
