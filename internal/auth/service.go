package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"members-service/internal/session"
	"members-service/internal/user"
)

const (
	maxNameLen  = 50
	maxEmailLen = 254

	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt input limit
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Service is the authorization core: it decides who may create an
// account, who may establish a session, and who may touch role-gated
// resources.
type Service struct {
	users    user.Store
	sessions session.Store
	ttl      time.Duration

	// injectable clock for tests
	now func() time.Time
}

func NewService(users user.Store, sessions session.Store, ttl time.Duration) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Register creates a user record with role "user" and establishes a
// session for it. Email uniqueness is enforced by the credential
// store, so concurrent registrations for one email cannot both win.
func (s *Service) Register(ctx context.Context, name, email, password string) (*session.Session, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("auth: hash password: %w", err)
	}

	u := &user.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         user.RoleUser,
	}

	if err := s.users.Insert(ctx, u); err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return nil, ErrDuplicateAccount
		}
		return nil, err
	}

	return s.createSession(ctx, u)
}

// Authenticate verifies the credentials and establishes a session
// carrying a snapshot of the matched record. Unknown email and wrong
// password both return ErrInvalidCredentials, with an early return on
// the failed lookup.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*session.Session, error) {
	email = strings.TrimSpace(email)

	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password must not be empty", ErrValidation)
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := VerifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(ctx, u)
}

// DestroySession removes the session if present. A missing or already
// expired session is not an error.
func (s *Service) DestroySession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// Authorize is the single role gate: allow iff a session exists and
// either no role is required or the session's snapshot carries it.
func Authorize(sess *session.Session, required user.Role) bool {
	if sess == nil {
		return false
	}
	if required == "" {
		return true
	}
	return sess.User.Role == required
}

// SetRole mutates the target user record's role. The actor must hold
// an admin session. Sessions already issued for the target keep their
// identity snapshot until re-login.
func (s *Service) SetRole(ctx context.Context, actor *session.Session, targetEmail string, role user.Role) error {
	if !Authorize(actor, user.RoleAdmin) {
		return ErrForbidden
	}

	targetEmail = strings.TrimSpace(targetEmail)
	if err := validateEmail(targetEmail); err != nil {
		return err
	}
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	if err := s.users.UpdateRole(ctx, targetEmail, role); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	return nil
}

func (s *Service) createSession(ctx context.Context, u *user.User) (*session.Session, error) {
	id, err := session.GenerateID()
	if err != nil {
		return nil, err
	}

	now := s.now()
	sess := session.Session{
		ID: id,
		User: session.Identity{
			UserID: u.ID,
			Name:   u.Name,
			Email:  u.Email,
			Role:   u.Role,
		},
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("auth: persist session: %w", err)
	}

	return &sess, nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("%w: name must be at most %d characters", ErrValidation, maxNameLen)
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email must not be empty", ErrValidation)
	}
	if len(email) > maxEmailLen {
		return fmt.Errorf("%w: email must be at most %d characters", ErrValidation, maxEmailLen)
	}
	if !emailRx.MatchString(email) {
		return fmt.Errorf("%w: email is not well-formed", ErrValidation)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return fmt.Errorf("%w: password must be at most %d characters", ErrValidation, maxPasswordLen)
	}
	return nil
}
