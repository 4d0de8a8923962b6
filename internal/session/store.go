package session

import (
	"context"
	"time"

	"members-service/internal/user"
)

// Identity is the snapshot of the user embedded in a session. It is
// taken at login time and never refreshed: a role change on the user
// record takes effect only after re-login.
type Identity struct {
	UserID string    `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   user.Role `json:"role"`
}

type Session struct {
	ID        string    `json:"session_id"`
	User      Identity  `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given
// instant. The store evicts expired sessions on its own; this guards
// the window between expiry and eviction.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store defines how sessions are stored and retrieved. The store owns
// session lifetime; implementations evict entries at ExpiresAt.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Update(ctx context.Context, s Session) error
	Delete(ctx context.Context, sessionID string) error
}
