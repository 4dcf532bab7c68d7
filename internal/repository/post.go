package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bloggers/bloggers-api/internal/model"
)

var postColumns = map[string]string{
	"createdAt":        "created_at",
	"title":            "title",
	"shortDescription": "short_description",
	"content":          "content",
	"blogId":           "blog_id",
	"blogName":         "blog_name",
}

const postSelect = `SELECT id, title, short_description, content, blog_id, blog_name, created_at FROM posts`

// PostRepository handles post persistence operations.
type PostRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new PostRepository.
func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	query := `INSERT INTO posts (id, title, short_description, content, blog_id, blog_name, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.ShortDescription, post.Content, post.BlogID, post.BlogName, post.CreatedAt,
	)
	if isDuplicateEntryError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	post := &model.Post{}
	err := r.db.QueryRowContext(ctx, postSelect+` WHERE id = ?`, id).Scan(
		&post.ID, &post.Title, &post.ShortDescription, &post.Content, &post.BlogID, &post.BlogName, &post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return post, nil
}

// List returns one page of posts, optionally scoped to a blog, and the total
// number of matches.
func (r *PostRepository) List(ctx context.Context, q model.PostQuery) ([]model.Post, int, error) {
	where := ""
	var args []any
	if q.BlogID != "" {
		where = ` WHERE blog_id = ?`
		args = append(args, q.BlogID)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := postSelect + where + orderBy(postColumns, q.PageQuery) + ` LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, append(args, q.PageSize, q.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.ShortDescription, &p.Content, &p.BlogID, &p.BlogName, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		posts = append(posts, p)
	}

	return posts, total, rows.Err()
}

func (r *PostRepository) Update(ctx context.Context, post *model.Post) error {
	query := `UPDATE posts SET title = ?, short_description = ?, content = ?, blog_id = ?, blog_name = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		post.Title, post.ShortDescription, post.Content, post.BlogID, post.BlogName, post.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *PostRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM posts`)
	return err
}
