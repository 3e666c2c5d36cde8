package memory

import (
	"context"
	"testing"

	"github.com/shiftly-hq/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(name, email, employeeID string, role user.Role) user.User {
	return user.User{
		Name:         name,
		Email:        email,
		EmployeeID:   employeeID,
		Department:   "Engineering",
		Role:         role,
		PasswordHash: "x",
	}
}

func TestUserRepository_Create_Duplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	created, err := repo.Create(ctx, newTestUser("Ana", "ana@example.com", "EMP-001", user.RoleEmployee))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = repo.Create(ctx, newTestUser("Ana Clone", "ANA@example.com", "EMP-002", user.RoleEmployee))
	assert.ErrorIs(t, err, user.ErrEmailExists)

	_, err = repo.Create(ctx, newTestUser("Bo", "bo@example.com", "EMP-001", user.RoleEmployee))
	assert.ErrorIs(t, err, user.ErrEmployeeIDExists)
}

func TestUserRepository_GetByEmail_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	_, err := repo.Create(ctx, newTestUser("Ana", "Ana@Example.com", "EMP-001", user.RoleEmployee))
	require.NoError(t, err)

	found, err := repo.GetByEmail(ctx, "ANA@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", found.Email)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_ListEmployees_ExcludesManagers(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	_, err := repo.Create(ctx, newTestUser("Zoe", "zoe@example.com", "EMP-003", user.RoleEmployee))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestUser("Ana", "ana@example.com", "EMP-001", user.RoleEmployee))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestUser("Max", "max@example.com", "MGR-001", user.RoleManager))
	require.NoError(t, err)

	employees, err := repo.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	// ordered by name
	assert.Equal(t, "Ana", employees[0].Name)
	assert.Equal(t, "Zoe", employees[1].Name)
}
