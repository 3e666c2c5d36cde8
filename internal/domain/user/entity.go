package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Regular employee
	RoleManager  Role = "manager"  // Can view org-wide attendance and exports
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleEmployee || r == RoleManager
}

type User struct {
	ID           string
	Name         string
	Email        string // stored lowercased; unique
	EmployeeID   string // unique
	Department   string
	Role         Role
	PasswordHash string // never serialized
	CreatedAt    time.Time
}
