package tasks_models

import (
	projects_models "taskhub/internal/features/projects/models"
	users_enums "taskhub/internal/features/users/enums"
	users_models "taskhub/internal/features/users/models"

	"github.com/google/uuid"
)

// Task verdicts follow the same pure-predicate shape as the project ones.
// The admin bypass is intentionally uneven: reads and deletes get it,
// updates do not.

// CanCreateTask: project owner or member, checked against the live
// member set.
func CanCreateTask(user *users_models.User, project *projects_models.Project, memberIDs []uuid.UUID) bool {
	return projects_models.IsOwnerOrMember(user, project, memberIDs)
}

// CanListProjectTasks additionally admits admins and managers.
func CanListProjectTasks(
	user *users_models.User,
	project *projects_models.Project,
	memberIDs []uuid.UUID,
) bool {
	if user.IsAdmin() || user.Role == users_enums.UserRoleManager {
		return true
	}

	return projects_models.IsOwnerOrMember(user, project, memberIDs)
}

// CanViewTask: admin bypasses, otherwise project owner or member.
func CanViewTask(
	user *users_models.User,
	project *projects_models.Project,
	memberIDs []uuid.UUID,
) bool {
	if user.IsAdmin() {
		return true
	}

	return projects_models.IsOwnerOrMember(user, project, memberIDs)
}

// CanUpdateTask: project owner, task author, or current assignee. No
// admin bypass.
func CanUpdateTask(user *users_models.User, task *Task, project *projects_models.Project) bool {
	return project.IsOwnedBy(user.ID) || task.IsAuthoredBy(user.ID) || task.IsAssignedTo(user.ID)
}

// CanDeleteTask: task author, project owner, or admin.
func CanDeleteTask(user *users_models.User, task *Task, project *projects_models.Project) bool {
	return task.IsAuthoredBy(user.ID) || project.IsOwnedBy(user.ID) || user.IsAdmin()
}

// CanBeAssigned: an assignee must be the project owner or a current member.
func CanBeAssigned(assigneeID uuid.UUID, project *projects_models.Project, memberIDs []uuid.UUID) bool {
	return project.IsOwnedBy(assigneeID) || projects_models.IsMemberID(assigneeID, memberIDs)
}
