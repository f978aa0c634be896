package projects_services

import (
	audit_logs "taskhub/internal/features/audit_logs"
	projects_repositories "taskhub/internal/features/projects/repositories"
	users_repositories "taskhub/internal/features/users/repositories"
)

var projectRepository = &projects_repositories.ProjectRepository{}
var membershipRepository = &projects_repositories.MembershipRepository{}

var projectService = &ProjectService{
	projectRepository:    projectRepository,
	membershipRepository: membershipRepository,
	auditLogService:      audit_logs.GetAuditLogService(),
}

var membershipService = &MembershipService{
	projectRepository:    projectRepository,
	membershipRepository: membershipRepository,
	userRepository:       &users_repositories.UserRepository{},
	projectService:       projectService,
	auditLogService:      audit_logs.GetAuditLogService(),
}

func GetProjectService() *ProjectService {
	return projectService
}

func GetMembershipService() *MembershipService {
	return membershipService
}
