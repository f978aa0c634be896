package projects_services

import (
	"fmt"

	audit_logs "taskhub/internal/features/audit_logs"
	projects_dto "taskhub/internal/features/projects/dto"
	projects_models "taskhub/internal/features/projects/models"
	projects_repositories "taskhub/internal/features/projects/repositories"
	users_models "taskhub/internal/features/users/models"
	users_repositories "taskhub/internal/features/users/repositories"
	"taskhub/internal/util/apperrors"

	"github.com/google/uuid"
)

type MembershipService struct {
	projectRepository    *projects_repositories.ProjectRepository
	membershipRepository *projects_repositories.MembershipRepository
	userRepository       *users_repositories.UserRepository
	projectService       *ProjectService
	auditLogService      *audit_logs.AuditLogService
}

// AddMember attaches an active user, looked up by email, to the project
// member set. Only the project owner can manage members; admins get no
// bypass here.
func (s *MembershipService) AddMember(
	projectID uuid.UUID,
	email string,
	actor *users_models.User,
) (*projects_dto.ProjectDetailResponseDTO, error) {
	project, err := s.getManageableProject(projectID, actor)
	if err != nil {
		return nil, err
	}

	member, err := s.userRepository.GetActiveUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if member == nil {
		return nil, apperrors.NotFound("user not found")
	}

	existing, err := s.membershipRepository.GetMembershipByUserAndProject(member.ID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	if existing != nil {
		return nil, apperrors.Conflict("user is already a member of this project")
	}

	membership := &projects_models.ProjectMembership{
		ProjectID: projectID,
		UserID:    member.ID,
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Member added to project %s: %s", project.Title, member.Email),
		&actor.ID,
		&projectID,
	)

	return s.projectService.buildDetailResponse(project)
}

// RemoveMember detaches a user from the project member set. Owner only.
func (s *MembershipService) RemoveMember(
	projectID uuid.UUID,
	memberID uuid.UUID,
	actor *users_models.User,
) (*projects_dto.ProjectDetailResponseDTO, error) {
	project, err := s.getManageableProject(projectID, actor)
	if err != nil {
		return nil, err
	}

	member, err := s.userRepository.GetActiveUserByID(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if member == nil {
		return nil, apperrors.NotFound("user not found")
	}

	existing, err := s.membershipRepository.GetMembershipByUserAndProject(member.ID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	if existing == nil {
		return nil, apperrors.NotFound("user is not a member of this project")
	}

	if err := s.membershipRepository.RemoveMember(member.ID, projectID); err != nil {
		return nil, fmt.Errorf("failed to remove membership: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Member removed from project %s: %s", project.Title, member.Email),
		&actor.ID,
		&projectID,
	)

	return s.projectService.buildDetailResponse(project)
}

func (s *MembershipService) getManageableProject(
	projectID uuid.UUID,
	actor *users_models.User,
) (*projects_models.Project, error) {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if project == nil {
		return nil, apperrors.NotFound("project not found")
	}

	if !projects_models.CanManageMembers(actor, project) {
		return nil, apperrors.PermissionDenied("only the project owner can manage members")
	}

	return project, nil
}
