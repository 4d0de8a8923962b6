package user

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryStore is an in-memory Store used by unit tests and local
// experiments. It mirrors the Postgres semantics: case-insensitive
// email matching and duplicate rejection under the lock, so the
// insert is atomic with respect to concurrent registrations.
type MemoryStore struct {
	mu    sync.Mutex
	users map[string]*User // keyed by lowercased email
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]*User)}
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}

	cp := *u
	return &cp, nil
}

func (s *MemoryStore) Insert(_ context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(u.Email)
	if _, ok := s.users[key]; ok {
		return ErrDuplicateEmail
	}

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	cp := *u
	s.users[key] = &cp
	return nil
}

func (s *MemoryStore) UpdateRole(_ context.Context, email string, role Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[strings.ToLower(email)]
	if !ok {
		return ErrNotFound
	}

	u.Role = role
	u.UpdatedAt = time.Now()
	return nil
}
