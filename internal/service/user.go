package service

import (
	"context"
	"errors"
	"time"

	"github.com/bloggers/bloggers-api/internal/model"
	"github.com/bloggers/bloggers-api/internal/repository"
)

// PasswordHasher derives the stored digest of a password.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// UserService handles user administration.
type UserService struct {
	users  UserStore
	hasher PasswordHasher
	now    func() time.Time
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore, hasher PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher, now: time.Now}
}

// Create registers a user. A taken login is reported before a taken email;
// either is a *FieldError with the message "<field> should be unique".
func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (model.UserResponse, error) {
	if err := s.checkUnique(ctx, req.Login, req.Email); err != nil {
		return model.UserResponse{}, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		ID:           newID(),
		Login:        req.Login,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    timestamp(s.now),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost a race with a concurrent insert; report which field.
			if uerr := s.checkUnique(ctx, req.Login, req.Email); uerr != nil {
				return model.UserResponse{}, uerr
			}
		}
		return model.UserResponse{}, err
	}

	return toUserResponse(*user), nil
}

func (s *UserService) checkUnique(ctx context.Context, login, email string) error {
	if _, err := s.users.GetByLogin(ctx, login); err == nil {
		return uniqueErr("login")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return uniqueErr("email")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}

func uniqueErr(field string) *FieldError {
	return &FieldError{Field: field, Message: field + " should be unique"}
}

func (s *UserService) List(ctx context.Context, q model.UserQuery) (model.Page[model.UserResponse], error) {
	users, total, err := s.users.List(ctx, q)
	if err != nil {
		return model.Page[model.UserResponse]{}, err
	}
	items := make([]model.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u))
	}
	return model.NewPage(q.PageQuery, total, items), nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	err := s.users.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func toUserResponse(u model.User) model.UserResponse {
	return model.UserResponse{
		ID:        u.ID,
		Login:     u.Login,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
