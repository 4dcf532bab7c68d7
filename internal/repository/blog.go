package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bloggers/bloggers-api/internal/model"
)

var blogColumns = map[string]string{
	"createdAt":    "created_at",
	"name":         "name",
	"description":  "description",
	"websiteUrl":   "website_url",
	"isMembership": "is_membership",
}

// BlogRepository handles blog persistence operations.
type BlogRepository struct {
	db *sql.DB
}

// NewBlogRepository creates a new BlogRepository.
func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) Create(ctx context.Context, blog *model.Blog) error {
	query := `INSERT INTO blogs (id, name, description, website_url, is_membership, created_at) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		blog.ID, blog.Name, blog.Description, blog.WebsiteURL, blog.IsMembership, blog.CreatedAt,
	)
	if isDuplicateEntryError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (*model.Blog, error) {
	query := `SELECT id, name, description, website_url, is_membership, created_at FROM blogs WHERE id = ?`

	blog := &model.Blog{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&blog.ID, &blog.Name, &blog.Description, &blog.WebsiteURL, &blog.IsMembership, &blog.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return blog, nil
}

// List returns one page of blogs and the total number of matches.
func (r *BlogRepository) List(ctx context.Context, q model.BlogQuery) ([]model.Blog, int, error) {
	where := ""
	var args []any
	if q.SearchNameTerm != "" {
		where = ` WHERE LOWER(name) LIKE ?`
		args = append(args, containsPattern(q.SearchNameTerm))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blogs`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, name, description, website_url, is_membership, created_at FROM blogs` +
		where + orderBy(blogColumns, q.PageQuery) + ` LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, append(args, q.PageSize, q.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var blogs []model.Blog
	for rows.Next() {
		var b model.Blog
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.WebsiteURL, &b.IsMembership, &b.CreatedAt); err != nil {
			return nil, 0, err
		}
		blogs = append(blogs, b)
	}

	return blogs, total, rows.Err()
}

func (r *BlogRepository) Update(ctx context.Context, blog *model.Blog) error {
	query := `UPDATE blogs SET name = ?, description = ?, website_url = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, blog.Name, blog.Description, blog.WebsiteURL, blog.ID)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *BlogRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM blogs`)
	return err
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
