package projects_models

import (
	users_models "taskhub/internal/features/users/models"

	"github.com/google/uuid"
)

// Authorization verdicts are pure functions of (caller, project, member set)
// so each rule stays independently testable. The member set always means the
// live membership rows; the owner counts as member-equivalent even without
// a membership row.

func IsMemberID(userID uuid.UUID, memberIDs []uuid.UUID) bool {
	for _, memberID := range memberIDs {
		if memberID == userID {
			return true
		}
	}

	return false
}

func IsOwnerOrMember(user *users_models.User, project *Project, memberIDs []uuid.UUID) bool {
	return project.IsOwnedBy(user.ID) || IsMemberID(user.ID, memberIDs)
}

// CanViewProject: admin bypasses, otherwise owner-or-member.
func CanViewProject(user *users_models.User, project *Project, memberIDs []uuid.UUID) bool {
	if user.IsAdmin() {
		return true
	}

	return IsOwnerOrMember(user, project, memberIDs)
}

// CanEditProject: only the literal owner may edit project fields. Admin is
// deliberately NOT given a bypass here.
func CanEditProject(user *users_models.User, project *Project) bool {
	return project.IsOwnedBy(user.ID)
}

// CanManageMembers: membership mutation is owner-only.
func CanManageMembers(user *users_models.User, project *Project) bool {
	return project.IsOwnedBy(user.ID)
}

// CanDeleteProject: owner or admin.
func CanDeleteProject(user *users_models.User, project *Project) bool {
	return project.IsOwnedBy(user.ID) || user.IsAdmin()
}
