package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloggers/bloggers-api/internal/model"
	"github.com/bloggers/bloggers-api/internal/repository"
)

var base = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func pageQuery(number, size int, sortBy string, dir model.SortDirection) model.PageQuery {
	return model.PageQuery{PageNumber: number, PageSize: size, SortBy: sortBy, SortDirection: dir}
}

func seedBlogs(t *testing.T, r *BlogRepository, names ...string) {
	t.Helper()
	for i, name := range names {
		require.NoError(t, r.Create(context.Background(), &model.Blog{
			ID:        fmt.Sprintf("blog-%d", i),
			Name:      name,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
}

func TestBlogRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	r := NewBlogRepository()

	blog := &model.Blog{ID: "b1", Name: "go", Description: "d", WebsiteURL: "https://go.dev", CreatedAt: base}
	require.NoError(t, r.Create(ctx, blog))
	assert.ErrorIs(t, r.Create(ctx, blog), repository.ErrDuplicate)

	got, err := r.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, *blog, *got)

	got.Name = "mutated"
	again, err := r.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "go", again.Name, "returned values must not alias storage")

	require.NoError(t, r.Update(ctx, &model.Blog{ID: "b1", Name: "rust", Description: "d2", WebsiteURL: "https://rust-lang.org"}))
	updated, err := r.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "rust", updated.Name)
	assert.Equal(t, base, updated.CreatedAt, "update keeps createdAt")

	assert.ErrorIs(t, r.Update(ctx, &model.Blog{ID: "missing"}), repository.ErrNotFound)
	require.NoError(t, r.Delete(ctx, "b1"))
	assert.ErrorIs(t, r.Delete(ctx, "b1"), repository.ErrNotFound)
	_, err = r.GetByID(ctx, "b1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBlogRepositoryListPagingAndSort(t *testing.T) {
	ctx := context.Background()
	r := NewBlogRepository()
	seedBlogs(t, r, "alpha", "Bravo", "charlie", "delta", "echo")

	items, total, err := r.List(ctx, model.BlogQuery{PageQuery: pageQuery(1, 2, "createdAt", model.SortDesc)})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, items, 2)
	assert.Equal(t, "echo", items[0].Name)
	assert.Equal(t, "delta", items[1].Name)

	items, _, err = r.List(ctx, model.BlogQuery{PageQuery: pageQuery(3, 2, "createdAt", model.SortDesc)})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "alpha", items[0].Name)

	items, total, err = r.List(ctx, model.BlogQuery{PageQuery: pageQuery(9, 2, "createdAt", model.SortDesc)})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, items)

	items, _, err = r.List(ctx, model.BlogQuery{PageQuery: pageQuery(1, 10, "name", model.SortAsc)})
	require.NoError(t, err)
	assert.Equal(t, "Bravo", items[0].Name)

	items, _, err = r.List(ctx, model.BlogQuery{PageQuery: pageQuery(1, 10, "unknown", model.SortAsc)})
	require.NoError(t, err)
	assert.Equal(t, "alpha", items[0].Name, "unknown sort field falls back to createdAt")
}

func TestBlogRepositorySearchNameTerm(t *testing.T) {
	r := NewBlogRepository()
	seedBlogs(t, r, "Golang Weekly", "rust news", "GO tips")

	items, total, err := r.List(context.Background(), model.BlogQuery{
		PageQuery:      pageQuery(1, 10, "createdAt", model.SortAsc),
		SearchNameTerm: "go",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "Golang Weekly", items[0].Name)
	assert.Equal(t, "GO tips", items[1].Name)
}

func TestPostRepositoryListByBlog(t *testing.T) {
	ctx := context.Background()
	r := NewPostRepository()
	for i := range 4 {
		blogID := "b1"
		if i%2 == 1 {
			blogID = "b2"
		}
		require.NoError(t, r.Create(ctx, &model.Post{
			ID:        fmt.Sprintf("p%d", i),
			Title:     fmt.Sprintf("title %d", i),
			BlogID:    blogID,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	items, total, err := r.List(ctx, model.PostQuery{PageQuery: pageQuery(1, 10, "createdAt", model.SortDesc), BlogID: "b2"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "p3", items[0].ID)
	assert.Equal(t, "p1", items[1].ID)

	_, total, err = r.List(ctx, model.PostQuery{PageQuery: pageQuery(1, 10, "createdAt", model.SortDesc)})
	require.NoError(t, err)
	assert.Equal(t, 4, total)

	require.NoError(t, r.Update(ctx, &model.Post{ID: "p0", Title: "new", BlogID: "b2", BlogName: "second"}))
	p, err := r.GetByID(ctx, "p0")
	require.NoError(t, err)
	assert.Equal(t, "second", p.BlogName)

	require.NoError(t, r.DeleteAll(ctx))
	_, total, err = r.List(ctx, model.PostQuery{PageQuery: pageQuery(1, 10, "createdAt", model.SortDesc)})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestUserRepositoryUniqueness(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()
	require.NoError(t, r.Create(ctx, &model.User{ID: "u1", Login: "alice", Email: "alice@example.com"}))

	tests := []struct {
		name string
		user model.User
	}{
		{"same id", model.User{ID: "u1", Login: "x", Email: "x@example.com"}},
		{"same login", model.User{ID: "u2", Login: "alice", Email: "y@example.com"}},
		{"same email", model.User{ID: "u3", Login: "bob", Email: "alice@example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, r.Create(ctx, &tt.user), repository.ErrDuplicate)
		})
	}
}

func TestUserRepositoryLookups(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()
	require.NoError(t, r.Create(ctx, &model.User{ID: "u1", Login: "alice", Email: "bob@example.com"}))
	require.NoError(t, r.Create(ctx, &model.User{ID: "u2", Login: "bob@example.com", Email: "b2@example.com"}))

	u, err := r.GetByLoginOrEmail(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	u, err = r.GetByLoginOrEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u2", u.ID, "login match wins over email match")

	u, err = r.GetByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = r.GetByLogin(ctx, "ALICE")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = r.GetByLoginOrEmail(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepositorySearchTermsAreOred(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()
	for i, u := range []struct{ login, email string }{
		{"alice", "a@one.com"},
		{"bob", "b@two.com"},
		{"carol", "c@three.com"},
	} {
		require.NoError(t, r.Create(ctx, &model.User{
			ID: fmt.Sprintf("u%d", i), Login: u.login, Email: u.email, CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	items, total, err := r.List(ctx, model.UserQuery{
		PageQuery:       pageQuery(1, 10, "login", model.SortAsc),
		SearchLoginTerm: "AL",
		SearchEmailTerm: "TWO",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "alice", items[0].Login)
	assert.Equal(t, "bob", items[1].Login)

	_, total, err = r.List(ctx, model.UserQuery{PageQuery: pageQuery(1, 10, "", model.SortDesc)})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}
