package tasks_services

import (
	audit_logs "taskhub/internal/features/audit_logs"
	projects_repositories "taskhub/internal/features/projects/repositories"
	tasks_repositories "taskhub/internal/features/tasks/repositories"
	users_repositories "taskhub/internal/features/users/repositories"
	users_services "taskhub/internal/features/users/services"
)

var taskService = &TaskService{
	taskRepository:       &tasks_repositories.TaskRepository{},
	projectRepository:    &projects_repositories.ProjectRepository{},
	membershipRepository: &projects_repositories.MembershipRepository{},
	userRepository:       &users_repositories.UserRepository{},
	auditLogService:      audit_logs.GetAuditLogService(),
}

func GetTaskService() *TaskService {
	return taskService
}

func SetupDependencies() {
	users_services.GetDirectoryService().SetAssignedTaskCounter(taskService)
}
