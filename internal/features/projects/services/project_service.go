package projects_services

import (
	"fmt"
	"time"

	audit_logs "taskhub/internal/features/audit_logs"
	projects_dto "taskhub/internal/features/projects/dto"
	projects_models "taskhub/internal/features/projects/models"
	projects_repositories "taskhub/internal/features/projects/repositories"
	users_dto "taskhub/internal/features/users/dto"
	users_models "taskhub/internal/features/users/models"
	"taskhub/internal/util/apperrors"

	"github.com/google/uuid"
)

type ProjectService struct {
	projectRepository    *projects_repositories.ProjectRepository
	membershipRepository *projects_repositories.MembershipRepository
	auditLogService      *audit_logs.AuditLogService
}

// CreateProject persists a new project and adds the creator to its member
// set. The owner-role requirement is enforced at the route level.
func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	creator *users_models.User,
) (*projects_dto.ProjectDetailResponseDTO, error) {
	now := time.Now().UTC()

	project := &projects_models.Project{
		ID:          uuid.New(),
		Title:       request.Title,
		Description: request.Description,
		DueDate:     request.DueDate,
		OwnerID:     creator.ID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.projectRepository.CreateProject(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	membership := &projects_models.ProjectMembership{
		ProjectID: project.ID,
		UserID:    creator.ID,
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return nil, fmt.Errorf("failed to create project membership: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project created: %s", project.Title),
		&creator.ID,
		&project.ID,
	)

	return s.buildDetailResponse(project)
}

// GetProject loads the project and enforces the read rule: admin bypasses,
// everyone else must be owner or member.
func (s *ProjectService) GetProject(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_dto.ProjectDetailResponseDTO, error) {
	project, memberIDs, err := s.loadProjectWithMemberIDs(projectID)
	if err != nil {
		return nil, err
	}

	if !projects_models.CanViewProject(user, project, memberIDs) {
		return nil, apperrors.PermissionDenied("no access to this project")
	}

	return s.buildDetailResponse(project)
}

// GetProjects lists projects visible to the user, newest first. Admin sees
// everything; only_owned narrows to owned projects; otherwise the user sees
// the owner-or-member set.
func (s *ProjectService) GetProjects(
	user *users_models.User,
	onlyOwned bool,
) (*projects_dto.ListProjectsResponseDTO, error) {
	var projects []*projects_models.Project
	var err error

	switch {
	case user.IsAdmin():
		projects, err = s.projectRepository.GetAllProjects()
	case onlyOwned:
		projects, err = s.projectRepository.GetProjectsOwnedBy(user.ID)
	default:
		projects, err = s.projectRepository.GetProjectsAccessibleBy(user.ID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]projects_dto.ProjectResponseDTO, len(projects))
	for i, project := range projects {
		responses[i] = toProjectResponse(project)
	}

	return &projects_dto.ListProjectsResponseDTO{Projects: responses}, nil
}

// UpdateProject applies a partial update. Readability rules are checked
// first (so admins and members get 403 rather than 404 on a real project),
// then the edit itself requires the exact owner; admin gets no bypass.
func (s *ProjectService) UpdateProject(
	projectID uuid.UUID,
	request *projects_dto.UpdateProjectRequestDTO,
	user *users_models.User,
) (*projects_dto.ProjectDetailResponseDTO, error) {
	project, memberIDs, err := s.loadProjectWithMemberIDs(projectID)
	if err != nil {
		return nil, err
	}

	if !projects_models.CanViewProject(user, project, memberIDs) {
		return nil, apperrors.PermissionDenied("no access to this project")
	}

	if !projects_models.CanEditProject(user, project) {
		return nil, apperrors.PermissionDenied("only the project owner can edit this project")
	}

	fields := map[string]any{}
	if request.Title != nil {
		fields["title"] = *request.Title
	}
	if request.Description != nil {
		fields["description"] = *request.Description
	}
	if request.DueDate != nil {
		fields["due_date"] = *request.DueDate
	}

	if len(fields) > 0 {
		fields["updated_at"] = time.Now().UTC()

		if err := s.projectRepository.UpdateProjectFields(projectID, fields); err != nil {
			return nil, fmt.Errorf("failed to update project: %w", err)
		}
	}

	updated, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload project: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project updated: %s", updated.Title),
		&user.ID,
		&projectID,
	)

	return s.buildDetailResponse(updated)
}

// DeleteProject removes the project with its memberships and tasks.
// Allowed for the owner and for admins.
func (s *ProjectService) DeleteProject(projectID uuid.UUID, user *users_models.User) error {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	if project == nil {
		return apperrors.NotFound("project not found")
	}

	if !projects_models.CanDeleteProject(user, project) {
		return apperrors.PermissionDenied("only the project owner or an admin can delete this project")
	}

	if err := s.projectRepository.DeleteProject(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project deleted: %s", project.Title),
		&user.ID,
		&projectID,
	)

	return nil
}

func (s *ProjectService) GetProjectAuditLogs(
	projectID uuid.UUID,
	user *users_models.User,
	request *audit_logs.GetAuditLogsRequest,
) (*audit_logs.GetAuditLogsResponse, error) {
	project, memberIDs, err := s.loadProjectWithMemberIDs(projectID)
	if err != nil {
		return nil, err
	}

	if !projects_models.CanViewProject(user, project, memberIDs) {
		return nil, apperrors.PermissionDenied("no access to this project")
	}

	return s.auditLogService.GetProjectAuditLogs(projectID, request)
}

func (s *ProjectService) loadProjectWithMemberIDs(
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

func (s *ProjectService) buildDetailResponse(
	project *projects_models.Project,
) (*projects_dto.ProjectDetailResponseDTO, error) {
	members, err := s.membershipRepository.GetProjectMembers(project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project members: %w", err)
	}

	memberResponses := make([]users_dto.UserResponseDTO, len(members))
	for i, member := range members {
		memberResponses[i] = users_dto.NewUserResponseDTO(member)
	}

	return &projects_dto.ProjectDetailResponseDTO{
		ProjectResponseDTO: toProjectResponse(project),
		Members:            memberResponses,
	}, nil
}

func toProjectResponse(project *projects_models.Project) projects_dto.ProjectResponseDTO {
	return projects_dto.ProjectResponseDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		DueDate:     project.DueDate,
		OwnerID:     project.OwnerID,
		IsActive:    project.IsActive,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
