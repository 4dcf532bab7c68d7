package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bloggers/bloggers-api/internal/model"
	"github.com/bloggers/bloggers-api/internal/repository"
)

var blogFields = map[string]comparator[model.Blog]{
	"createdAt":    byTime(func(b model.Blog) time.Time { return b.CreatedAt }),
	"name":         byString(func(b model.Blog) string { return b.Name }),
	"description":  byString(func(b model.Blog) string { return b.Description }),
	"websiteUrl":   byString(func(b model.Blog) string { return b.WebsiteURL }),
	"isMembership": byBool(func(b model.Blog) bool { return b.IsMembership }),
}

type BlogRepository struct {
	mu    sync.RWMutex
	blogs map[string]model.Blog
}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{blogs: make(map[string]model.Blog)}
}

func (r *BlogRepository) Create(_ context.Context, blog *model.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.blogs[blog.ID]; exists {
		return repository.ErrDuplicate
	}
	r.blogs[blog.ID] = *blog
	return nil
}

func (r *BlogRepository) GetByID(_ context.Context, id string) (*model.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	blog, ok := r.blogs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &blog, nil
}

func (r *BlogRepository) List(_ context.Context, q model.BlogQuery) ([]model.Blog, int, error) {
	r.mu.RLock()
	matches := make([]model.Blog, 0, len(r.blogs))
	for _, b := range r.blogs {
		if q.SearchNameTerm == "" || containsFold(b.Name, q.SearchNameTerm) {
			matches = append(matches, b)
		}
	}
	r.mu.RUnlock()

	items, total := page(matches, q.PageQuery, blogFields, func(b model.Blog) string { return b.ID })
	return items, total, nil
}

func (r *BlogRepository) Update(_ context.Context, blog *model.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.blogs[blog.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Name = blog.Name
	stored.Description = blog.Description
	stored.WebsiteURL = blog.WebsiteURL
	r.blogs[blog.ID] = stored
	return nil
}

func (r *BlogRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.blogs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.blogs, id)
	return nil
}

func (r *BlogRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.blogs)
	return nil
}
