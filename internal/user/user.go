package user

import (
	"context"
	"errors"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

var (
	ErrDuplicateEmail = errors.New("user: email already registered")
	ErrNotFound       = errors.New("user: not found")
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Store is the credential store contract. Email lookups are
// case-insensitive; implementations must back Insert with a uniqueness
// constraint rather than a check-then-insert.
type Store interface {
	// FindByEmail returns (nil, nil) when no record matches.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Insert persists a new user. Returns ErrDuplicateEmail when the
	// email is already taken.
	Insert(ctx context.Context, u *User) error

	// UpdateRole mutates only the role of the matching record.
	// Returns ErrNotFound when no record matches.
	UpdateRole(ctx context.Context, email string, role Role) error
}
