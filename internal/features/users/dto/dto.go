package users_dto

import (
	"time"

	users_enums "taskhub/internal/features/users/enums"
	users_models "taskhub/internal/features/users/models"

	"github.com/google/uuid"
)

type RegisterRequestDTO struct {
	Email     string  `json:"email"     binding:"required,email"`
	Password  string  `json:"password"  binding:"required,min=8"`
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName"  binding:"required"`
	Position  *string `json:"position"`
}

// TokenRequestDTO is the OAuth2 password-grant style form body.
type TokenRequestDTO struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type TokenPairResponseDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type AccessTokenResponseDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UpdateUserRequestDTO struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	// admin-only fields
	Position *string               `json:"position"`
	Role     *users_enums.UserRole `json:"role"`
}

func (r *UpdateUserRequestDTO) HasAdminFields() bool {
	return r.Position != nil || r.Role != nil
}

type UserResponseDTO struct {
	ID        uuid.UUID            `json:"id"`
	Email     string               `json:"email"`
	FirstName string               `json:"firstName"`
	LastName  string               `json:"lastName"`
	Position  *string              `json:"position"`
	Role      users_enums.UserRole `json:"role"`
	IsActive  bool                 `json:"isActive"`
	CreatedAt time.Time            `json:"createdAt"`
}

// UserProfileResponseDTO decorates a user with the read-time count of tasks
// currently assigned to them.
type UserProfileResponseDTO struct {
	UserResponseDTO
	TasksCount int64 `json:"tasksCount"`
}

type ListUsersResponseDTO struct {
	Users []UserResponseDTO `json:"users"`
}

func NewUserResponseDTO(user *users_models.User) UserResponseDTO {
	return UserResponseDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Position:  user.Position,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
