package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/bloggers/bloggers-api/internal/model"
)

var userColumns = map[string]string{
	"createdAt": "created_at",
	"login":     "login",
	"email":     "email",
}

const userSelect = `SELECT id, login, email, password_hash, created_at FROM users`

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. A login or email already taken yields ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (id, login, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, user.ID, user.Login, user.Email, user.PasswordHash, user.CreatedAt)
	if isDuplicateEntryError(err) {
		return ErrDuplicate
	}
	return err
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.getOne(ctx, userSelect+` WHERE id = ?`, id)
}

// GetByLogin retrieves a user by their exact login.
func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	return r.getOne(ctx, userSelect+` WHERE login = ?`, login)
}

// GetByEmail retrieves a user by their exact email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, userSelect+` WHERE email = ?`, email)
}

// GetByLoginOrEmail retrieves the user whose login or email equals value.
// A login match wins over an email match.
func (r *UserRepository) GetByLoginOrEmail(ctx context.Context, value string) (*model.User, error) {
	return r.getOne(ctx, userSelect+` WHERE login = ? OR email = ? ORDER BY login = ? DESC LIMIT 1`, value, value, value)
}

func (r *UserRepository) getOne(ctx context.Context, query string, args ...any) (*model.User, error) {
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID, &user.Login, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return user, nil
}

// List returns one page of users and the total number of matches. Login and
// email search terms are case-insensitive and OR'd when both are set.
func (r *UserRepository) List(ctx context.Context, q model.UserQuery) ([]model.User, int, error) {
	var conds []string
	var args []any
	if q.SearchLoginTerm != "" {
		conds = append(conds, `LOWER(login) LIKE ?`)
		args = append(args, containsPattern(q.SearchLoginTerm))
	}
	if q.SearchEmailTerm != "" {
		conds = append(conds, `LOWER(email) LIKE ?`)
		args = append(args, containsPattern(q.SearchEmailTerm))
	}
	where := ""
	if len(conds) > 0 {
		where = ` WHERE ` + strings.Join(conds, ` OR `)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := userSelect + where + orderBy(userColumns, q.PageQuery) + ` LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, append(args, q.PageSize, q.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Login, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}

	return users, total, rows.Err()
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *UserRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users`)
	return err
}
