package user

import "context"

// UserRepository defines data access methods for users.
type UserRepository interface {
	// Create persists a new user. The storage layer enforces uniqueness of
	// email and employee ID and reports collisions as ErrEmailExists or
	// ErrEmployeeIDExists.
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by ID, ErrUserNotFound if unknown.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email, case-insensitively.
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByEmployeeID retrieves a user by employee ID.
	GetByEmployeeID(ctx context.Context, employeeID string) (User, error)

	// ListEmployees returns all users with role=employee (the roster),
	// ordered by name.
	ListEmployees(ctx context.Context) ([]User, error)
}
