package tasks_models

import (
	"time"

	tasks_enums "taskhub/internal/features/tasks/enums"

	"github.com/google/uuid"
)

type Task struct {
	ID           uuid.UUID                `json:"id"           gorm:"column:id;primaryKey"`
	ProjectID    uuid.UUID                `json:"projectId"    gorm:"column:project_id;index"`
	Title        string                   `json:"title"        gorm:"column:title"`
	Description  string                   `json:"description"  gorm:"column:description"`
	Status       tasks_enums.TaskStatus   `json:"status"       gorm:"column:status"`
	Priority     tasks_enums.TaskPriority `json:"priority"     gorm:"column:priority"`
	DueDate      *time.Time               `json:"dueDate"      gorm:"column:due_date"`
	AssignedToID *uuid.UUID               `json:"assignedToId" gorm:"column:assigned_to_id;index"`
	AuthorID     uuid.UUID                `json:"authorId"     gorm:"column:author_id"`
	CreatedAt    time.Time                `json:"createdAt"    gorm:"column:created_at"`
}

func (Task) TableName() string {
	return "tasks"
}

func (t *Task) IsAuthoredBy(userID uuid.UUID) bool {
	return t.AuthorID == userID
}

func (t *Task) IsAssignedTo(userID uuid.UUID) bool {
	return t.AssignedToID != nil && *t.AssignedToID == userID
}
