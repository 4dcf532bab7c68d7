package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bloggers/bloggers-api/internal/model"
	"github.com/bloggers/bloggers-api/internal/repository"
)

var postFields = map[string]comparator[model.Post]{
	"createdAt":        byTime(func(p model.Post) time.Time { return p.CreatedAt }),
	"title":            byString(func(p model.Post) string { return p.Title }),
	"shortDescription": byString(func(p model.Post) string { return p.ShortDescription }),
	"content":          byString(func(p model.Post) string { return p.Content }),
	"blogId":           byString(func(p model.Post) string { return p.BlogID }),
	"blogName":         byString(func(p model.Post) string { return p.BlogName }),
}

type PostRepository struct {
	mu    sync.RWMutex
	posts map[string]model.Post
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[string]model.Post)}
}

func (r *PostRepository) Create(_ context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[post.ID]; exists {
		return repository.ErrDuplicate
	}
	r.posts[post.ID] = *post
	return nil
}

func (r *PostRepository) GetByID(_ context.Context, id string) (*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &post, nil
}

func (r *PostRepository) List(_ context.Context, q model.PostQuery) ([]model.Post, int, error) {
	r.mu.RLock()
	matches := make([]model.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if q.BlogID == "" || p.BlogID == q.BlogID {
			matches = append(matches, p)
		}
	}
	r.mu.RUnlock()

	items, total := page(matches, q.PageQuery, postFields, func(p model.Post) string { return p.ID })
	return items, total, nil
}

func (r *PostRepository) Update(_ context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.posts[post.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Title = post.Title
	stored.ShortDescription = post.ShortDescription
	stored.Content = post.Content
	stored.BlogID = post.BlogID
	stored.BlogName = post.BlogName
	r.posts[post.ID] = stored
	return nil
}

func (r *PostRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *PostRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.posts)
	return nil
}
