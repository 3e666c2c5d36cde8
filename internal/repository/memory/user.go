// Package memory implements the repositories on plain maps. It is the
// fallback store selected at startup when no database is configured, and the
// backend the service tests run against. It honors the same uniqueness and
// error contracts as the PostgreSQL implementation.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shiftly-hq/attendance-backend-go/internal/domain/user"
)

type UserRepository struct {
	mu           sync.RWMutex
	byID         map[string]user.User
	byEmail      map[string]string // lowercased email -> id
	byEmployeeID map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:         make(map[string]user.User),
		byEmail:      make(map[string]string),
		byEmployeeID: make(map[string]string),
	}
}

// Create implements user.UserRepository. Uniqueness checks and the insert
// happen under one lock, matching the atomicity the database constraint
// gives the PostgreSQL implementation.
func (r *UserRepository) Create(_ context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(u.Email)
	if _, exists := r.byEmail[email]; exists {
		return user.User{}, user.ErrEmailExists
	}
	if _, exists := r.byEmployeeID[u.EmployeeID]; exists {
		return user.User{}, user.ErrEmployeeIDExists
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Email = email
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	r.byID[u.ID] = u
	r.byEmail[email] = u.ID
	r.byEmployeeID[u.EmployeeID] = u.ID

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *UserRepository) GetByID(_ context.Context, id string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return r.byID[id], nil
}

// GetByEmployeeID implements user.UserRepository.
func (r *UserRepository) GetByEmployeeID(_ context.Context, employeeID string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmployeeID[employeeID]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return r.byID[id], nil
}

// ListEmployees implements user.UserRepository.
func (r *UserRepository) ListEmployees(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var employees []user.User
	for _, u := range r.byID {
		if u.Role == user.RoleEmployee {
			employees = append(employees, u)
		}
	}
	sort.Slice(employees, func(i, j int) bool {
		return employees[i].Name < employees[j].Name
	})

	return employees, nil
}
