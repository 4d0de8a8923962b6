package auth

import "errors"

var (
	// ErrValidation covers malformed input the caller can correct.
	ErrValidation = errors.New("invalid input")

	// ErrDuplicateAccount is returned when the email is already registered.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two causes must stay indistinguishable to the caller to
	// prevent account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrForbidden is returned when the actor's role does not permit
	// the operation. Distinct from "not authenticated".
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned when a role mutation targets an unknown
	// account.
	ErrNotFound = errors.New("account not found")
)
