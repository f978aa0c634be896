package users_services

import (
	"fmt"

	users_dto "taskhub/internal/features/users/dto"
	users_interfaces "taskhub/internal/features/users/interfaces"
	users_models "taskhub/internal/features/users/models"
	users_repositories "taskhub/internal/features/users/repositories"
	"taskhub/internal/util/apperrors"

	"github.com/google/uuid"
)

type DirectoryService struct {
	userRepository *users_repositories.UserRepository
	auditLogWriter users_interfaces.AuditLogWriter
	taskCounter    users_interfaces.AssignedTaskCounter
}

func (s *DirectoryService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *DirectoryService) SetAssignedTaskCounter(counter users_interfaces.AssignedTaskCounter) {
	s.taskCounter = counter
}

func (s *DirectoryService) GetUserProfile(userID uuid.UUID) (*users_dto.UserProfileResponseDTO, error) {
	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	return s.decorateProfile(user)
}

func (s *DirectoryService) GetMyProfile(user *users_models.User) (*users_dto.UserProfileResponseDTO, error) {
	return s.decorateProfile(user)
}

// UpdateUser applies a partial profile update. Name fields are self-editable;
// position and role require the admin role. Editing another user's profile is
// allowed only when an admin supplies admin-level fields.
func (s *DirectoryService) UpdateUser(
	userID uuid.UUID,
	request *users_dto.UpdateUserRequestDTO,
	caller *users_models.User,
) (*users_dto.UserProfileResponseDTO, error) {
	isSelf := caller.ID == userID

	if !isSelf && !request.HasAdminFields() {
		return nil, apperrors.PermissionDenied("cannot edit another user's profile")
	}

	if request.HasAdminFields() && !caller.CanManageUsers() {
		return nil, apperrors.PermissionDenied("only administrators can change position and role")
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	fields := map[string]any{}
	if request.FirstName != nil {
		fields["first_name"] = *request.FirstName
	}
	if request.LastName != nil {
		fields["last_name"] = *request.LastName
	}
	if request.Position != nil {
		fields["position"] = *request.Position
	}
	if request.Role != nil {
		if !request.Role.IsValid() {
			return nil, apperrors.InvalidInput("invalid user role: %s", *request.Role)
		}

		fields["role"] = *request.Role
	}

	if len(fields) == 0 {
		return s.decorateProfile(user)
	}

	if err := s.userRepository.UpdateUserFields(userID, fields); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("User profile updated: %s", user.Email),
		&caller.ID,
		nil,
	)

	updated, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}

	return s.decorateProfile(updated)
}

// GetUsers lists active users ordered by first name. An empty directory is
// reported as not found rather than an empty list.
func (s *DirectoryService) GetUsers() (*users_dto.ListUsersResponseDTO, error) {
	users, err := s.userRepository.GetActiveUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	if len(users) == 0 {
		return nil, apperrors.NotFound("users not found")
	}

	responses := make([]users_dto.UserResponseDTO, len(users))
	for i, user := range users {
		responses[i] = users_dto.NewUserResponseDTO(user)
	}

	return &users_dto.ListUsersResponseDTO{Users: responses}, nil
}

func (s *DirectoryService) decorateProfile(user *users_models.User) (*users_dto.UserProfileResponseDTO, error) {
	tasksCount, err := s.taskCounter.CountTasksAssignedToUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count assigned tasks: %w", err)
	}

	return &users_dto.UserProfileResponseDTO{
		UserResponseDTO: users_dto.NewUserResponseDTO(user),
		TasksCount:      tasksCount,
	}, nil
}
