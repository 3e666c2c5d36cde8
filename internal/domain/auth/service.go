package auth

import "context"

// AuthService defines registration and login.
type AuthService interface {
	// Register creates a user and returns it with a fresh access token.
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)

	// Login verifies credentials and returns the user with a fresh access
	// token, ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
}
