package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloggers/bloggers-api/internal/model"
	"github.com/bloggers/bloggers-api/internal/repository/memory"
)

func newBlogAndPostServices() (*BlogService, *PostService, Stores) {
	stores := Stores{
		Blogs: memory.NewBlogRepository(),
		Posts: memory.NewPostRepository(),
		Users: memory.NewUserRepository(),
	}
	return NewBlogService(stores.Blogs), NewPostService(stores.Posts, stores.Blogs), stores
}

var firstPage = model.PageQuery{PageNumber: 1, PageSize: 10, SortBy: "createdAt", SortDirection: model.SortDesc}

func TestBlogLifecycle(t *testing.T) {
	blogs, _, _ := newBlogAndPostServices()
	ctx := context.Background()

	created, err := blogs.Create(ctx, model.BlogRequest{Name: "go", Description: "gophers", WebsiteURL: "https://go.dev"})
	require.NoError(t, err)
	assert.False(t, created.IsMembership)

	got, err := blogs.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	require.NoError(t, blogs.Update(ctx, created.ID, model.BlogRequest{Name: "golang", Description: "d", WebsiteURL: "https://go.dev"}))
	got, err = blogs.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "golang", got.Name)

	assert.ErrorIs(t, blogs.Update(ctx, "missing", model.BlogRequest{}), ErrBlogNotFound)
	require.NoError(t, blogs.Delete(ctx, created.ID))
	assert.ErrorIs(t, blogs.Delete(ctx, created.ID), ErrBlogNotFound)
	_, err = blogs.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestPostCreateCopiesBlogName(t *testing.T) {
	blogs, posts, _ := newBlogAndPostServices()
	ctx := context.Background()
	blog, err := blogs.Create(ctx, model.BlogRequest{Name: "go", Description: "d", WebsiteURL: "https://go.dev"})
	require.NoError(t, err)

	post, err := posts.Create(ctx, model.PostRequest{Title: "t", ShortDescription: "s", Content: "c", BlogID: blog.ID})
	require.NoError(t, err)
	assert.Equal(t, blog.ID, post.BlogID)
	assert.Equal(t, "go", post.BlogName)

	nested, err := posts.CreateForBlog(ctx, blog.ID, model.PostRequest{Title: "t2", ShortDescription: "s", Content: "c", BlogID: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, blog.ID, nested.BlogID)
}

func TestPostCreateUnknownBlog(t *testing.T) {
	_, posts, _ := newBlogAndPostServices()
	ctx := context.Background()

	_, err := posts.Create(ctx, model.PostRequest{Title: "t", ShortDescription: "s", Content: "c", BlogID: "missing"})
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "blogId", fe.Field)
	assert.Equal(t, "Invalid blogId", fe.Message)

	_, err = posts.CreateForBlog(ctx, "missing", model.PostRequest{Title: "t"})
	assert.ErrorIs(t, err, ErrBlogNotFound)

	_, err = posts.ListForBlog(ctx, "missing", model.PostQuery{PageQuery: firstPage})
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestPostUpdateChecksBlogBeforePost(t *testing.T) {
	blogs, posts, _ := newBlogAndPostServices()
	ctx := context.Background()
	first, err := blogs.Create(ctx, model.BlogRequest{Name: "first", Description: "d", WebsiteURL: "https://a.io"})
	require.NoError(t, err)
	second, err := blogs.Create(ctx, model.BlogRequest{Name: "second", Description: "d", WebsiteURL: "https://b.io"})
	require.NoError(t, err)
	post, err := posts.Create(ctx, model.PostRequest{Title: "t", ShortDescription: "s", Content: "c", BlogID: first.ID})
	require.NoError(t, err)

	var fe *FieldError
	assert.ErrorAs(t, posts.Update(ctx, "missing-post", model.PostRequest{BlogID: "missing-blog"}), &fe)
	assert.ErrorIs(t, posts.Update(ctx, "missing-post", model.PostRequest{BlogID: first.ID}), ErrPostNotFound)

	require.NoError(t, posts.Update(ctx, post.ID, model.PostRequest{Title: "t2", ShortDescription: "s", Content: "c", BlogID: second.ID}))
	got, err := posts.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.BlogID)
	assert.Equal(t, "second", got.BlogName)
	assert.Equal(t, post.CreatedAt, got.CreatedAt)
}

func TestPostListForBlog(t *testing.T) {
	blogs, posts, _ := newBlogAndPostServices()
	ctx := context.Background()
	a, err := blogs.Create(ctx, model.BlogRequest{Name: "a", Description: "d", WebsiteURL: "https://a.io"})
	require.NoError(t, err)
	b, err := blogs.Create(ctx, model.BlogRequest{Name: "b", Description: "d", WebsiteURL: "https://b.io"})
	require.NoError(t, err)
	for _, blogID := range []string{a.ID, a.ID, b.ID} {
		_, err := posts.Create(ctx, model.PostRequest{Title: "t", ShortDescription: "s", Content: "c", BlogID: blogID})
		require.NoError(t, err)
	}

	page, err := posts.ListForBlog(ctx, a.ID, model.PostQuery{PageQuery: model.PageQuery{PageNumber: 1, PageSize: 1, SortBy: "createdAt", SortDirection: model.SortDesc}})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, 2, page.PagesCount)
	require.Len(t, page.Items, 1)
	assert.Equal(t, a.ID, page.Items[0].BlogID)

	all, err := posts.List(ctx, model.PostQuery{PageQuery: firstPage})
	require.NoError(t, err)
	assert.Equal(t, 3, all.TotalCount)
}

func TestTestingServiceDeleteAll(t *testing.T) {
	blogs, posts, stores := newBlogAndPostServices()
	ctx := context.Background()
	blog, err := blogs.Create(ctx, model.BlogRequest{Name: "a", Description: "d", WebsiteURL: "https://a.io"})
	require.NoError(t, err)
	_, err = posts.Create(ctx, model.PostRequest{Title: "t", ShortDescription: "s", Content: "c", BlogID: blog.ID})
	require.NoError(t, err)

	require.NoError(t, NewTestingService(stores).DeleteAll(ctx))

	blogPage, err := blogs.List(ctx, model.BlogQuery{PageQuery: firstPage})
	require.NoError(t, err)
	assert.Zero(t, blogPage.TotalCount)
	assert.NotNil(t, blogPage.Items)
	postPage, err := posts.List(ctx, model.PostQuery{PageQuery: firstPage})
	require.NoError(t, err)
	assert.Zero(t, postPage.TotalCount)
}
