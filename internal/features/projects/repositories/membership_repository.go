package projects_repositories

import (
	"time"

	projects_models "taskhub/internal/features/projects/models"
	users_models "taskhub/internal/features/users/models"
	"taskhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepository struct{}

func (r *MembershipRepository) CreateMembership(membership *projects_models.ProjectMembership) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}

	if membership.CreatedAt.IsZero() {
		membership.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(membership).Error
}

func (r *MembershipRepository) GetMembershipByUserAndProject(
	userID, projectID uuid.UUID,
) (*projects_models.ProjectMembership, error) {
	var membership projects_models.ProjectMembership

	if err := storage.GetDb().
		Where("user_id = ? AND project_id = ?", userID, projectID).
		First(&membership).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

// GetProjectMemberIDs returns the user ids of the project's live members.
func (r *MembershipRepository) GetProjectMemberIDs(projectID uuid.UUID) ([]uuid.UUID, error) {
	var memberIDs []uuid.UUID

	err := storage.GetDb().
		Table("project_memberships").
		Select("user_id").
		Where("project_id = ?", projectID).
		Scan(&memberIDs).Error

	return memberIDs, err
}

// GetProjectMembers returns the member user records joined through the
// membership table, in join order.
func (r *MembershipRepository) GetProjectMembers(projectID uuid.UUID) ([]*users_models.User, error) {
	var members []*users_models.User

	err := storage.GetDb().
		Table("users u").
		Select("u.*").
		Joins("JOIN project_memberships pm ON pm.user_id = u.id").
		Where("pm.project_id = ?", projectID).
		Order("pm.created_at ASC").
		Scan(&members).Error

	return members, err
}

func (r *MembershipRepository) RemoveMember(userID, projectID uuid.UUID) error {
	return storage.GetDb().
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Delete(&projects_models.ProjectMembership{}).Error
}
