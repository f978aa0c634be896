package tasks_repositories

import (
	"errors"

	projects_models "taskhub/internal/features/projects/models"
	tasks_enums "taskhub/internal/features/tasks/enums"
	tasks_models "taskhub/internal/features/tasks/models"
	"taskhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository struct{}

func (r *TaskRepository) CreateTask(task *tasks_models.Task) error {
	return storage.GetDb().Create(task).Error
}

func (r *TaskRepository) GetTaskByID(taskID uuid.UUID) (*tasks_models.Task, error) {
	var task tasks_models.Task

	if err := storage.GetDb().Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &task, nil
}

// GetProjectTasks applies optional equality filters on status and priority,
// newest first.
func (r *TaskRepository) GetProjectTasks(
	projectID uuid.UUID,
	statusFilter *tasks_enums.TaskStatus,
	priorityFilter *tasks_enums.TaskPriority,
) ([]*tasks_models.Task, error) {
	var tasks []*tasks_models.Task

	query := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("created_at DESC")

	if statusFilter != nil {
		query = query.Where("status = ?", *statusFilter)
	}
	if priorityFilter != nil {
		query = query.Where("priority = ?", *priorityFilter)
	}

	err := query.Find(&tasks).Error

	return tasks, err
}

func (r *TaskRepository) GetTasksAssignedTo(userID uuid.UUID) ([]*tasks_models.Task, error) {
	var tasks []*tasks_models.Task

	err := storage.GetDb().
		Where("assigned_to_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error

	return tasks, err
}

// GetUserTasksVisibleTo returns tasks assigned to the target user, narrowed
// to projects the caller owns or belongs to.
func (r *TaskRepository) GetUserTasksVisibleTo(
	targetUserID uuid.UUID,
	callerID uuid.UUID,
) ([]*tasks_models.Task, error) {
	var tasks []*tasks_models.Task

	err := storage.GetDb().
		Where("assigned_to_id = ?", targetUserID).
		Where("project_id IN (?)",
			storage.GetDb().
				Model(&projects_models.Project{}).
				Select("id").
				Where("owner_id = ?", callerID).
				Or("id IN (?)",
					storage.GetDb().
						Model(&projects_models.ProjectMembership{}).
						Select("project_id").
						Where("user_id = ?", callerID))).
		Order("created_at DESC").
		Find(&tasks).Error

	return tasks, err
}

func (r *TaskRepository) UpdateTaskFields(taskID uuid.UUID, fields map[string]any) error {
	return storage.GetDb().Model(&tasks_models.Task{}).
		Where("id = ?", taskID).
		Updates(fields).Error
}

func (r *TaskRepository) DeleteTask(taskID uuid.UUID) error {
	return storage.GetDb().Where("id = ?", taskID).Delete(&tasks_models.Task{}).Error
}

func (r *TaskRepository) CountTasksAssignedToUser(userID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().Model(&tasks_models.Task{}).
		Where("assigned_to_id = ?", userID).
		Count(&count).Error

	return count, err
}
