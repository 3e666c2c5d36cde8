package user

type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	EmployeeID string `json:"employee_id"`
	Department string `json:"department"`
	Role       string `json:"role"`
	CreatedAt  string `json:"created_at"`
}

// ToResponse strips the password hash and formats timestamps.
func (u User) ToResponse() UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		EmployeeID: u.EmployeeID,
		Department: u.Department,
		Role:       string(u.Role),
		CreatedAt:  u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
