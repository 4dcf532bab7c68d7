package model

import "time"

// User represents a stored user credential.
type User struct {
	ID           string
	Login        string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// CreateUserRequest represents an admin user creation request.
type CreateUserRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginRequest represents a user login request. LoginOrEmail matches either
// the login or the email of a stored user.
type LoginRequest struct {
	LoginOrEmail string `json:"loginOrEmail"`
	Password     string `json:"password"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// UserResponse represents user data safe for API responses (no sensitive fields).
type UserResponse struct {
	ID        string    `json:"id"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// MeResponse is the view of the authenticated user.
type MeResponse struct {
	Email  string `json:"email"`
	Login  string `json:"login"`
	UserID string `json:"userId"`
}

// UserQuery filters and pages the user list.
type UserQuery struct {
	PageQuery
	SearchLoginTerm string
	SearchEmailTerm string
}

// UserSortFields lists the fields a user list may be sorted by.
var UserSortFields = []string{"createdAt", "login", "email"}
