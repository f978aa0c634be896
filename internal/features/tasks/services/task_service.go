package tasks_services

import (
	"fmt"
	"time"

	audit_logs "taskhub/internal/features/audit_logs"
	projects_models "taskhub/internal/features/projects/models"
	projects_repositories "taskhub/internal/features/projects/repositories"
	tasks_dto "taskhub/internal/features/tasks/dto"
	tasks_enums "taskhub/internal/features/tasks/enums"
	tasks_models "taskhub/internal/features/tasks/models"
	tasks_repositories "taskhub/internal/features/tasks/repositories"
	users_dto "taskhub/internal/features/users/dto"
	users_models "taskhub/internal/features/users/models"
	users_repositories "taskhub/internal/features/users/repositories"
	"taskhub/internal/util/apperrors"

	"github.com/google/uuid"
)

type TaskService struct {
	taskRepository       *tasks_repositories.TaskRepository
	projectRepository    *projects_repositories.ProjectRepository
	membershipRepository *projects_repositories.MembershipRepository
	userRepository       *users_repositories.UserRepository
	auditLogService      *audit_logs.AuditLogService
}

// CreateTask adds a task to the project. The caller must be the project
// owner or a member; an optional assignee email must resolve to someone in
// that same set.
func (s *TaskService) CreateTask(
	projectID uuid.UUID,
	request *tasks_dto.CreateTaskRequestDTO,
	user *users_models.User,
) (*tasks_dto.TaskResponseDTO, error) {
	project, memberIDs, err := s.loadProjectWithMemberIDs(projectID)
	if err != nil {
		return nil, err
	}

	if !tasks_models.CanCreateTask(user, project, memberIDs) {
		return nil, apperrors.PermissionDenied("only the project owner or a member can create tasks")
	}

	if !request.Priority.IsValid() {
		return nil, apperrors.InvalidInput("invalid task priority")
	}

	var assignedToID *uuid.UUID
	if request.AssignedToEmail != nil {
		assignee, err := s.userRepository.GetActiveUserByEmail(*request.AssignedToEmail)
		if err != nil {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}

		if assignee == nil || !tasks_models.CanBeAssigned(assignee.ID, project, memberIDs) {
			return nil, apperrors.InvalidInput("assignee is not the project owner or a member")
		}

		assignedToID = &assignee.ID
	}

	task := &tasks_models.Task{
		ID:           uuid.New(),
		ProjectID:    project.ID,
		Title:        request.Title,
		Description:  request.Description,
		Status:       tasks_enums.TaskStatusTodo,
		Priority:     request.Priority,
		DueDate:      request.DueDate,
		AssignedToID: assignedToID,
		AuthorID:     user.ID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.taskRepository.CreateTask(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Task created: %s", task.Title),
		&user.ID,
		&project.ID,
	)

	return s.buildTaskResponse(task)
}

// GetProjectTasks lists a project's tasks with optional status/priority
// equality filters. Owner, member, admin, and manager may read.
func (s *TaskService) GetProjectTasks(
	projectID uuid.UUID,
	user *users_models.User,
	statusFilter *tasks_enums.TaskStatus,
	priorityFilter *tasks_enums.TaskPriority,
) (*tasks_dto.ListTasksResponseDTO, error) {
	project, memberIDs, err := s.loadProjectWithMemberIDs(projectID)
	if err != nil {
		return nil, err
	}

	if !tasks_models.CanListProjectTasks(user, project, memberIDs) {
		return nil, apperrors.PermissionDenied("no access to this project's tasks")
	}

	if statusFilter != nil && !statusFilter.IsValid() {
		return nil, apperrors.InvalidInput("invalid status filter")
	}
	if priorityFilter != nil && !priorityFilter.IsValid() {
		return nil, apperrors.InvalidInput("invalid priority filter")
	}

	tasks, err := s.taskRepository.GetProjectTasks(projectID, statusFilter, priorityFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return s.buildTaskListResponse(tasks)
}

func (s *TaskService) GetTask(taskID uuid.UUID, user *users_models.User) (*tasks_dto.TaskResponseDTO, error) {
	task, project, memberIDs, err := s.loadTaskWithProject(taskID)
	if err != nil {
		return nil, err
	}

	if !tasks_models.CanViewTask(user, project, memberIDs) {
		return nil, apperrors.PermissionDenied("no access to this task")
	}

	return s.buildTaskResponse(task)
}

// UpdateTask applies a partial update. Only the project owner, the task
// author, or the current assignee may edit; admin gets no bypass. A present
// zero assignedToId clears the assignment; any other value must belong to
// the project's owner-or-member set, checked before anything is written.
func (s *TaskService) UpdateTask(
	taskID uuid.UUID,
	request *tasks_dto.UpdateTaskRequestDTO,
	user *users_models.User,
) (*tasks_dto.TaskResponseDTO, error) {
	task, project, memberIDs, err := s.loadTaskWithProject(taskID)
	if err != nil {
		return nil, err
	}

	if !tasks_models.CanUpdateTask(user, task, project) {
		return nil, apperrors.PermissionDenied(
			"only the project owner, the author, or the assignee can edit this task")
	}

	fields := map[string]any{}
	if request.Title != nil {
		fields["title"] = *request.Title
	}
	if request.Description != nil {
		fields["description"] = *request.Description
	}
	if request.Priority != nil {
		if !request.Priority.IsValid() {
			return nil, apperrors.InvalidInput("invalid task priority")
		}
		fields["priority"] = *request.Priority
	}
	if request.Status != nil {
		if !request.Status.IsValid() {
			return nil, apperrors.InvalidInput("invalid task status")
		}
		fields["status"] = *request.Status
	}
	if request.DueDate != nil {
		fields["due_date"] = *request.DueDate
	}
	if request.AssignedToID != nil {
		if *request.AssignedToID == uuid.Nil {
			fields["assigned_to_id"] = nil
		} else {
			if !tasks_models.CanBeAssigned(*request.AssignedToID, project, memberIDs) {
				return nil, apperrors.InvalidInput("assignee is not the project owner or a member")
			}
			fields["assigned_to_id"] = *request.AssignedToID
		}
	}

	if len(fields) > 0 {
		if err := s.taskRepository.UpdateTaskFields(taskID, fields); err != nil {
			return nil, fmt.Errorf("failed to update task: %w", err)
		}
	}

	updated, err := s.taskRepository.GetTaskByID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Task updated: %s", updated.Title),
		&user.ID,
		&project.ID,
	)

	return s.buildTaskResponse(updated)
}

// DeleteTask removes the task. Author, project owner, or admin.
func (s *TaskService) DeleteTask(taskID uuid.UUID, user *users_models.User) error {
	task, project, _, err := s.loadTaskWithProject(taskID)
	if err != nil {
		return err
	}

	if !tasks_models.CanDeleteTask(user, task, project) {
		return apperrors.PermissionDenied(
			"only the author, the project owner, or an admin can delete this task")
	}

	if err := s.taskRepository.DeleteTask(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Task deleted: %s", task.Title),
		&user.ID,
		&project.ID,
	)

	return nil
}

func (s *TaskService) GetMyAssignedTasks(user *users_models.User) (*tasks_dto.ListTasksResponseDTO, error) {
	tasks, err := s.taskRepository.GetTasksAssignedTo(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned tasks: %w", err)
	}

	return s.buildTaskListResponse(tasks)
}

// GetUserTasks returns the target user's assigned tasks, narrowed to
// projects the caller owns or belongs to. Caller and target may differ.
func (s *TaskService) GetUserTasks(
	targetUserID uuid.UUID,
	caller *users_models.User,
) (*tasks_dto.ListTasksResponseDTO, error) {
	tasks, err := s.taskRepository.GetUserTasksVisibleTo(targetUserID, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user tasks: %w", err)
	}

	return s.buildTaskListResponse(tasks)
}

// CountTasksAssignedToUser backs the tasks_count decoration on user
// profiles.
func (s *TaskService) CountTasksAssignedToUser(userID uuid.UUID) (int64, error) {
	return s.taskRepository.CountTasksAssignedToUser(userID)
}

func (s *TaskService) loadProjectWithMemberIDs(
	projectID uuid.UUID,
) (*projects_models.Project, []uuid.UUID, error) {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get project: %w", err)
	}

	if project == nil {
		return nil, nil, apperrors.NotFound("project not found")
	}

	memberIDs, err := s.membershipRepository.GetProjectMemberIDs(projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get project members: %w", err)
	}

	return project, memberIDs, nil
}

func (s *TaskService) loadTaskWithProject(
	taskID uuid.UUID,
) (*tasks_models.Task, *projects_models.Project, []uuid.UUID, error) {
	task, err := s.taskRepository.GetTaskByID(taskID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get task: %w", err)
	}

	if task == nil {
		return nil, nil, nil, apperrors.NotFound("task not found")
	}

	project, memberIDs, err := s.loadProjectWithMemberIDs(task.ProjectID)
	if err != nil {
		return nil, nil, nil, err
	}

	return task, project, memberIDs, nil
}

func (s *TaskService) buildTaskResponse(task *tasks_models.Task) (*tasks_dto.TaskResponseDTO, error) {
	responses, err := s.buildTaskListResponse([]*tasks_models.Task{task})
	if err != nil {
		return nil, err
	}

	return &responses.Tasks[0], nil
}

// buildTaskListResponse decorates tasks with their author and assignee
// rows, loaded in a single batch.
func (s *TaskService) buildTaskListResponse(
	tasks []*tasks_models.Task,
) (*tasks_dto.ListTasksResponseDTO, error) {
	userIDs := make([]uuid.UUID, 0, len(tasks)*2)
	seen := map[uuid.UUID]bool{}

	for _, task := range tasks {
		if !seen[task.AuthorID] {
			seen[task.AuthorID] = true
			userIDs = append(userIDs, task.AuthorID)
		}
		if task.AssignedToID != nil && !seen[*task.AssignedToID] {
			seen[*task.AssignedToID] = true
			userIDs = append(userIDs, *task.AssignedToID)
		}
	}

	users, err := s.userRepository.GetUsersByIDs(userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load task users: %w", err)
	}

	usersByID := make(map[uuid.UUID]*users_models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	responses := make([]tasks_dto.TaskResponseDTO, len(tasks))
	for i, task := range tasks {
		response := tasks_dto.TaskResponseDTO{
			ID:          task.ID,
			ProjectID:   task.ProjectID,
			Title:       task.Title,
			Description: task.Description,
			Status:      task.Status,
			Priority:    task.Priority,
			DueDate:     task.DueDate,
			CreatedAt:   task.CreatedAt,
		}

		if author, ok := usersByID[task.AuthorID]; ok {
			response.Author = users_dto.NewUserResponseDTO(author)
		}
		if task.AssignedToID != nil {
			if assignee, ok := usersByID[*task.AssignedToID]; ok {
				assigneeResponse := users_dto.NewUserResponseDTO(assignee)
				response.AssignedTo = &assigneeResponse
			}
		}

		responses[i] = response
	}

	return &tasks_dto.ListTasksResponseDTO{Tasks: responses}, nil
}
