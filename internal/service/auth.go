package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bloggers/bloggers-api/internal/crypto"
	"github.com/bloggers/bloggers-api/internal/model"
	"github.com/bloggers/bloggers-api/internal/repository"
)

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Issue(claims crypto.Claims, ttl time.Duration) (string, error)
}

// AuthService handles authentication business logic.
type AuthService struct {
	users  UserStore
	tokens TokenIssuer
	// dummyHash is verified against when no user matches so that unknown
	// logins cost as much as wrong passwords.
	dummyHash string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, tokens TokenIssuer) *AuthService {
	dummy, err := crypto.HashPassword("dummy-password")
	if err != nil {
		slog.Warn("failed to prepare dummy hash", "error", err)
	}
	return &AuthService{users: users, tokens: tokens, dummyHash: dummy}
}

// Login authenticates by login or email and returns an access token. Unknown
// users and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	user, err := s.users.GetByLoginOrEmail(ctx, req.LoginOrEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			if s.dummyHash != "" {
				_, _ = crypto.VerifyPassword(req.Password, s.dummyHash)
			}
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.LoginResponse{}, err
	}
	if !match {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(crypto.Claims{UserID: user.ID}, 0)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{AccessToken: token}, nil
}

// Me returns the profile of the authenticated user. A user deleted after the
// token was issued is ErrUserNotFound.
func (s *AuthService) Me(ctx context.Context, userID string) (model.MeResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.MeResponse{}, ErrUserNotFound
		}
		return model.MeResponse{}, err
	}

	return model.MeResponse{
		Email:  user.Email,
		Login:  user.Login,
		UserID: user.ID,
	}, nil
}
