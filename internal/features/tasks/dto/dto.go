package tasks_dto

import (
	"time"

	tasks_enums "taskhub/internal/features/tasks/enums"
	users_dto "taskhub/internal/features/users/dto"

	"github.com/google/uuid"
)

type CreateTaskRequestDTO struct {
	Title           string                   `json:"title"           binding:"required,min=1,max=80"`
	Description     string                   `json:"description"     binding:"required,min=10,max=500"`
	Priority        tasks_enums.TaskPriority `json:"priority"        binding:"required"`
	DueDate         *time.Time               `json:"dueDate"`
	AssignedToEmail *string                  `json:"assignedToEmail"`
}

// UpdateTaskRequestDTO carries partial-update semantics. A present
// AssignedToId equal to the zero UUID clears the assignment.
type UpdateTaskRequestDTO struct {
	Title        *string                   `json:"title"        binding:"omitempty,min=1,max=80"`
	Description  *string                   `json:"description"  binding:"omitempty,min=10,max=500"`
	Priority     *tasks_enums.TaskPriority `json:"priority"`
	Status       *tasks_enums.TaskStatus   `json:"status"`
	DueDate      *time.Time                `json:"dueDate"`
	AssignedToID *uuid.UUID                `json:"assignedToId"`
}

type TaskResponseDTO struct {
	ID          uuid.UUID                  `json:"id"`
	ProjectID   uuid.UUID                  `json:"projectId"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	Status      tasks_enums.TaskStatus     `json:"status"`
	Priority    tasks_enums.TaskPriority   `json:"priority"`
	DueDate     *time.Time                 `json:"dueDate"`
	CreatedAt   time.Time                  `json:"createdAt"`
	Author      users_dto.UserResponseDTO  `json:"author"`
	AssignedTo  *users_dto.UserResponseDTO `json:"assignedTo"`
}

type ListTasksResponseDTO struct {
	Tasks []TaskResponseDTO `json:"tasks"`
}
