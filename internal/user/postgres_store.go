package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"members-service/internal/db"
)

const pqUniqueViolation = "23505"

type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`, email).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("user: find by email: %w", err)
	}

	return &u, nil
}

func (s *PostgresStore) Insert(ctx context.Context, u *User) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`,
		u.ID,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
	).Scan(&u.CreatedAt, &u.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("user: insert: %w", err)
	}

	return nil
}

func (s *PostgresStore) UpdateRole(ctx context.Context, email string, role Role) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET role = $2, updated_at = NOW()
		WHERE LOWER(email) = LOWER($1)
	`, email, role)
	if err != nil {
		return fmt.Errorf("user: update role: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("user: update role: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
