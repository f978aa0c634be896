package tasks_models

import (
	"testing"

	projects_models "taskhub/internal/features/projects/models"
	users_enums "taskhub/internal/features/users/enums"
	users_models "taskhub/internal/features/users/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func makeUser(role users_enums.UserRole) *users_models.User {
	return &users_models.User{ID: uuid.New(), Role: role, IsActive: true}
}

func Test_CanUpdateTask_OwnerAuthorAssigneeAllowed_AdminRejected(t *testing.T) {
	owner := makeUser(users_enums.UserRoleOwner)
	author := makeUser(users_enums.UserRoleMember)
	assignee := makeUser(users_enums.UserRoleMember)
	admin := makeUser(users_enums.UserRoleAdmin)
	outsider := makeUser(users_enums.UserRoleMember)

	project := &projects_models.Project{ID: uuid.New(), OwnerID: owner.ID}
	task := &Task{
		ID:           uuid.New(),
		ProjectID:    project.ID,
		AuthorID:     author.ID,
		AssignedToID: &assignee.ID,
	}

	assert.True(t, CanUpdateTask(owner, task, project))
	assert.True(t, CanUpdateTask(author, task, project))
	assert.True(t, CanUpdateTask(assignee, task, project))
	assert.False(t, CanUpdateTask(admin, task, project))
	assert.False(t, CanUpdateTask(outsider, task, project))
}

func Test_CanDeleteTask_AuthorOwnerAdminAllowed_AssigneeRejected(t *testing.T) {
	owner := makeUser(users_enums.UserRoleOwner)
	author := makeUser(users_enums.UserRoleMember)
	assignee := makeUser(users_enums.UserRoleMember)
	admin := makeUser(users_enums.UserRoleAdmin)

	project := &projects_models.Project{ID: uuid.New(), OwnerID: owner.ID}
	task := &Task{
		ID:           uuid.New(),
		ProjectID:    project.ID,
		AuthorID:     author.ID,
		AssignedToID: &assignee.ID,
	}

	assert.True(t, CanDeleteTask(author, task, project))
	assert.True(t, CanDeleteTask(owner, task, project))
	assert.True(t, CanDeleteTask(admin, task, project))
	assert.False(t, CanDeleteTask(assignee, task, project))
}

func Test_CanViewTask_AdminBypasses_OutsiderRejected(t *testing.T) {
	owner := makeUser(users_enums.UserRoleOwner)
	member := makeUser(users_enums.UserRoleMember)
	admin := makeUser(users_enums.UserRoleAdmin)
	outsider := makeUser(users_enums.UserRoleMember)

	project := &projects_models.Project{ID: uuid.New(), OwnerID: owner.ID}
	memberIDs := []uuid.UUID{member.ID}

	assert.True(t, CanViewTask(owner, project, memberIDs))
	assert.True(t, CanViewTask(member, project, memberIDs))
	assert.True(t, CanViewTask(admin, project, memberIDs))
	assert.False(t, CanViewTask(outsider, project, memberIDs))
}

func Test_CanListProjectTasks_ManagerAllowedWithoutMembership(t *testing.T) {
	owner := makeUser(users_enums.UserRoleOwner)
	manager := makeUser(users_enums.UserRoleManager)
	outsider := makeUser(users_enums.UserRoleMember)

	project := &projects_models.Project{ID: uuid.New(), OwnerID: owner.ID}

	assert.True(t, CanListProjectTasks(manager, project, nil))
	assert.False(t, CanListProjectTasks(outsider, project, nil))
}

func Test_CanBeAssigned_OwnerOrMemberOnly(t *testing.T) {
	ownerID := uuid.New()
	memberID := uuid.New()
	outsiderID := uuid.New()

	project := &projects_models.Project{ID: uuid.New(), OwnerID: ownerID}
	memberIDs := []uuid.UUID{memberID}

	assert.True(t, CanBeAssigned(ownerID, project, memberIDs))
	assert.True(t, CanBeAssigned(memberID, project, memberIDs))
	assert.False(t, CanBeAssigned(outsiderID, project, memberIDs))
}
