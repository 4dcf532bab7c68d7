package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bloggers/bloggers-api/internal/model"
	"github.com/bloggers/bloggers-api/internal/repository"
)

var userFields = map[string]comparator[model.User]{
	"createdAt": byTime(func(u model.User) time.Time { return u.CreatedAt }),
	"login":     byString(func(u model.User) string { return u.Login }),
	"email":     byString(func(u model.User) string { return u.Email }),
}

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]model.User)}
}

// Create stores user. Like the unique indexes of the MySQL schema, an ID,
// login or email already present yields ErrDuplicate.
func (r *UserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == user.ID || u.Login == user.Login || u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *UserRepository) GetByLogin(_ context.Context, login string) (*model.User, error) {
	return r.find(func(u model.User) bool { return u.Login == login })
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*model.User, error) {
	return r.find(func(u model.User) bool { return u.Email == email })
}

// GetByLoginOrEmail prefers a login match over an email match.
func (r *UserRepository) GetByLoginOrEmail(ctx context.Context, value string) (*model.User, error) {
	if u, err := r.GetByLogin(ctx, value); err == nil {
		return u, nil
	}
	return r.GetByEmail(ctx, value)
}

func (r *UserRepository) find(match func(model.User) bool) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) List(_ context.Context, q model.UserQuery) ([]model.User, int, error) {
	r.mu.RLock()
	matches := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		if matchesUserSearch(u, q) {
			matches = append(matches, u)
		}
	}
	r.mu.RUnlock()

	items, total := page(matches, q.PageQuery, userFields, func(u model.User) string { return u.ID })
	return items, total, nil
}

func matchesUserSearch(u model.User, q model.UserQuery) bool {
	if q.SearchLoginTerm == "" && q.SearchEmailTerm == "" {
		return true
	}
	return (q.SearchLoginTerm != "" && containsFold(u.Login, q.SearchLoginTerm)) ||
		(q.SearchEmailTerm != "" && containsFold(u.Email, q.SearchEmailTerm))
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *UserRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.users)
	return nil
}
