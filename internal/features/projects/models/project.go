package projects_models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID  `json:"id"          gorm:"column:id;primaryKey"`
	Title       string     `json:"title"       gorm:"column:title"`
	Description *string    `json:"description" gorm:"column:description"`
	DueDate     *time.Time `json:"dueDate"     gorm:"column:due_date"`
	OwnerID     uuid.UUID  `json:"ownerId"     gorm:"column:owner_id"`
	IsActive    bool       `json:"isActive"    gorm:"column:is_active"`
	CreatedAt   time.Time  `json:"createdAt"   gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updatedAt"   gorm:"column:updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) IsOwnedBy(userID uuid.UUID) bool {
	return p.OwnerID == userID
}
