package projects_dto

import (
	"time"

	users_dto "taskhub/internal/features/users/dto"

	"github.com/google/uuid"
)

type CreateProjectRequestDTO struct {
	Title       string     `json:"title"       binding:"required,min=1,max=50"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

// UpdateProjectRequestDTO carries partial-update semantics: only fields
// present in the body are applied.
type UpdateProjectRequestDTO struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

type ProjectResponseDTO struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	OwnerID     uuid.UUID  `json:"ownerId"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ProjectDetailResponseDTO additionally carries the live member set.
type ProjectDetailResponseDTO struct {
	ProjectResponseDTO
	Members []users_dto.UserResponseDTO `json:"members"`
}

type ListProjectsResponseDTO struct {
	Projects []ProjectResponseDTO `json:"projects"`
}
