package service

import (
	"context"
	"errors"
	"time"

	"github.com/bloggers/bloggers-api/internal/model"
	"github.com/bloggers/bloggers-api/internal/repository"
)

var errInvalidBlogID = &FieldError{Field: "blogId", Message: "Invalid blogId"}

// PostService handles post business logic. Each post carries the name of its
// blog as of its last write.
type PostService struct {
	posts PostStore
	blogs BlogStore
	now   func() time.Time
}

// NewPostService creates a new PostService.
func NewPostService(posts PostStore, blogs BlogStore) *PostService {
	return &PostService{posts: posts, blogs: blogs, now: time.Now}
}

// Create stores a post under req.BlogID. An unknown blog is a field error.
func (s *PostService) Create(ctx context.Context, req model.PostRequest) (model.PostResponse, error) {
	blog, err := s.blogs.GetByID(ctx, req.BlogID)
	if err != nil {
		return model.PostResponse{}, invalidBlogID(err)
	}
	return s.create(ctx, blog, req)
}

// CreateForBlog stores a post under the blog named in the URL; req.BlogID is
// ignored. An unknown blog is ErrBlogNotFound.
func (s *PostService) CreateForBlog(ctx context.Context, blogID string, req model.PostRequest) (model.PostResponse, error) {
	blog, err := s.blogs.GetByID(ctx, blogID)
	if err != nil {
		return model.PostResponse{}, blogErr(err)
	}
	return s.create(ctx, blog, req)
}

func (s *PostService) create(ctx context.Context, blog *model.Blog, req model.PostRequest) (model.PostResponse, error) {
	post := &model.Post{
		ID:               newID(),
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Content:          req.Content,
		BlogID:           blog.ID,
		BlogName:         blog.Name,
		CreatedAt:        timestamp(s.now),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return model.PostResponse{}, err
	}
	return toPostResponse(*post), nil
}

func (s *PostService) Get(ctx context.Context, id string) (model.PostResponse, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return model.PostResponse{}, postErr(err)
	}
	return toPostResponse(*post), nil
}

// List pages all posts, or the posts of q.BlogID when set.
func (s *PostService) List(ctx context.Context, q model.PostQuery) (model.Page[model.PostResponse], error) {
	posts, total, err := s.posts.List(ctx, q)
	if err != nil {
		return model.Page[model.PostResponse]{}, err
	}
	items := make([]model.PostResponse, 0, len(posts))
	for _, p := range posts {
		items = append(items, toPostResponse(p))
	}
	return model.NewPage(q.PageQuery, total, items), nil
}

// ListForBlog is List scoped to an existing blog.
func (s *PostService) ListForBlog(ctx context.Context, blogID string, q model.PostQuery) (model.Page[model.PostResponse], error) {
	if _, err := s.blogs.GetByID(ctx, blogID); err != nil {
		return model.Page[model.PostResponse]{}, blogErr(err)
	}
	q.BlogID = blogID
	return s.List(ctx, q)
}

// Update rewrites a post. The target blog is checked before the post itself.
func (s *PostService) Update(ctx context.Context, id string, req model.PostRequest) error {
	blog, err := s.blogs.GetByID(ctx, req.BlogID)
	if err != nil {
		return invalidBlogID(err)
	}
	err = s.posts.Update(ctx, &model.Post{
		ID:               id,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Content:          req.Content,
		BlogID:           blog.ID,
		BlogName:         blog.Name,
	})
	return postErr(err)
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	return postErr(s.posts.Delete(ctx, id))
}

func postErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPostNotFound
	}
	return err
}

func invalidBlogID(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return errInvalidBlogID
	}
	return err
}

func toPostResponse(p model.Post) model.PostResponse {
	return model.PostResponse{
		ID:               p.ID,
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Content:          p.Content,
		BlogID:           p.BlogID,
		BlogName:         p.BlogName,
		CreatedAt:        p.CreatedAt,
	}
}
