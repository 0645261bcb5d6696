package entity

import "time"

type UserRole string

const (
	RoleStaff      UserRole = "staff"
	RoleAdmin      UserRole = "admin"
	RoleSuperadmin UserRole = "superadmin"
)

var validUserRoles = map[UserRole]bool{
	RoleStaff: true, RoleAdmin: true, RoleSuperadmin: true,
}

func (r UserRole) Valid() bool { return validUserRoles[r] }

type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
