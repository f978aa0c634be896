package users_models

import (
	"time"

	users_enums "taskhub/internal/features/users/enums"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID            `json:"id"        gorm:"column:id;primaryKey"`
	FirstName      string               `json:"firstName" gorm:"column:first_name"`
	LastName       string               `json:"lastName"  gorm:"column:last_name"`
	Position       *string              `json:"position"  gorm:"column:position"`
	Email          string               `json:"email"     gorm:"column:email;uniqueIndex"`
	HashedPassword string               `json:"-"         gorm:"column:hashed_password"`
	Role           users_enums.UserRole `json:"role"      gorm:"column:role"`
	IsActive       bool                 `json:"isActive"  gorm:"column:is_active"`
	CreatedAt      time.Time            `json:"createdAt" gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}

// Permission methods
func (u *User) IsAdmin() bool {
	return u.Role == users_enums.UserRoleAdmin
}

// CanCreateProjects reports whether the user holds project-creation rights.
// Only the owner role (and admins) may create projects.
func (u *User) CanCreateProjects() bool {
	return u.Role == users_enums.UserRoleOwner || u.Role == users_enums.UserRoleAdmin
}

func (u *User) CanManageUsers() bool {
	return u.Role == users_enums.UserRoleAdmin
}
