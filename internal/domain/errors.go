package domain

import "errors"

var (
	// ErrNotFound indicates the requested user does not exist.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken indicates a create or update collided with an existing email.
	ErrEmailTaken = errors.New("email already in use")
	// ErrInvalidCredentials indicates login failure; deliberately the same for
	// an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken indicates a malformed, tampered or expired session token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrForbidden indicates the caller is authenticated but not permitted.
	ErrForbidden = errors.New("forbidden")
)
