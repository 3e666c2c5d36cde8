package auth

import "errors"

var (
	// ErrInvalidCredentials deliberately covers both unknown email and
	// wrong password so login failures can't be used to probe for accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrInvalidToken = errors.New("invalid or expired token")
)
