package projects_models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectMembership links a user to a project. The pair is unique: a user
// joins a project at most once concurrently.
type ProjectMembership struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id;primaryKey"`
	ProjectID uuid.UUID `json:"projectId" gorm:"column:project_id;uniqueIndex:idx_project_user"`
	UserID    uuid.UUID `json:"userId"    gorm:"column:user_id;uniqueIndex:idx_project_user"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (ProjectMembership) TableName() string {
	return "project_memberships"
}
