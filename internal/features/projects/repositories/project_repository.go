package projects_repositories

import (
	projects_models "taskhub/internal/features/projects/models"
	"taskhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct{}

func (r *ProjectRepository) CreateProject(project *projects_models.Project) error {
	return storage.GetDb().Create(project).Error
}

func (r *ProjectRepository) GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().Where("id = ?", projectID).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) GetAllProjects() ([]*projects_models.Project, error) {
	var projects []*projects_models.Project

	err := storage.GetDb().
		Order("created_at DESC").
		Find(&projects).Error

	return projects, err
}

func (r *ProjectRepository) GetProjectsOwnedBy(userID uuid.UUID) ([]*projects_models.Project, error) {
	var projects []*projects_models.Project

	err := storage.GetDb().
		Where("owner_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error

	return projects, err
}

// GetProjectsAccessibleBy returns projects the user owns or belongs to.
func (r *ProjectRepository) GetProjectsAccessibleBy(userID uuid.UUID) ([]*projects_models.Project, error) {
	var projects []*projects_models.Project

	err := storage.GetDb().
		Where(
			"owner_id = ? OR id IN (?)",
			userID,
			storage.GetDb().
				Table("project_memberships").
				Select("project_id").
				Where("user_id = ?", userID),
		).
		Order("created_at DESC").
		Find(&projects).Error

	return projects, err
}

func (r *ProjectRepository) UpdateProjectFields(projectID uuid.UUID, fields map[string]any) error {
	return storage.GetDb().Model(&projects_models.Project{}).
		Where("id = ?", projectID).
		Updates(fields).Error
}

// DeleteProject removes the project and cascades memberships and tasks in
// one transaction.
func (r *ProjectRepository) DeleteProject(projectID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("project_id = ?", projectID).
			Delete(&projects_models.ProjectMembership{}).Error; err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM tasks WHERE project_id = ?", projectID).Error; err != nil {
			return err
		}

		return tx.
			Where("id = ?", projectID).
			Delete(&projects_models.Project{}).Error
	})
}
