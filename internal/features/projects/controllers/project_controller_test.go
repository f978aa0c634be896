package projects_controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	projects_dto "taskhub/internal/features/projects/dto"
	projects_testing "taskhub/internal/features/projects/testing"
	users_enums "taskhub/internal/features/users/enums"
	users_testing "taskhub/internal/features/users/testing"
	test_utils "taskhub/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProjectTestRouter() *gin.Engine {
	return projects_testing.CreateTestRouter(
		GetProjectController(),
		GetMembershipController(),
	)
}

func Test_CreateProject_AsOwner_CreatorBecomesMember(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleOwner)

	project := projects_testing.CreateTestProjectViaAPI("Test Project", owner.Token, router)

	assert.Equal(t, owner.UserID, project.OwnerID)

	memberIDs := make([]uuid.UUID, 0, len(project.Members))
	for _, member := range project.Members {
		memberIDs = append(memberIDs, member.ID)
	}
	assert.Contains(t, memberIDs, owner.UserID)
}

func Test_CreateProject_AsMemberRole_ReturnsForbidden(t *testing.T) {
	router := createProjectTestRouter()
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	request := projects_dto.CreateProjectRequestDTO{Title: "Not Allowed"}
	test_utils.MakePostRequest(t, router, "/projects", "Bearer "+member.Token, request, http.StatusForbidden)
}

func Test_GetProject_WithDifferentRelations_EnforcesVisibility(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleOwner)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	unrelatedOwner := users_testing.CreateTestUser(users_enums.UserRoleOwner)
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)

	project := projects_testing.CreateTestProjectViaAPI("Visibility Project", owner.Token, router)
	projects_testing.AddMemberViaAPI(project.ID.String(), member.Email, owner.Token, router)

	path := "/projects/" + project.ID.String()

	test_utils.MakeGetRequest(t, router, path, "Bearer "+owner.Token, http.StatusOK)
	test_utils.MakeGetRequest(t, router, path, "Bearer "+member.Token, http.StatusOK)
	test_utils.MakeGetRequest(t, router, path, "Bearer "+admin.Token, http.StatusOK)
	test_utils.MakeGetRequest(t, router, path, "Bearer "+unrelatedOwner.Token, http.StatusForbidden)
}

func Test_GetProject_WithUnknownID_ReturnsNotFound(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleOwner)

	test_utils.MakeGetRequest(t, router,
		"/projects/"+uuid.New().String(), "Bearer "+owner.Token, http.StatusNotFound)
}

func Test_GetProjects_NonAdminSeesExactlyOwnedAndMemberProjects(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleOwner)
	viewer := users_testing.CreateTestUser(users_enums.UserRoleOwner)

	ownedByViewer := projects_testing.CreateTestProjectViaAPI("Viewer Owned", viewer.Token, router)
	memberOf := projects_testing.CreateTestProjectViaAPI("Viewer Member", owner.Token, router)
	unrelated := projects_testing.CreateTestProjectViaAPI("Unrelated", owner.Token, router)
	projects_testing.AddMemberViaAPI(memberOf.ID.String(), viewer.Email, owner.Token, router)

	var response projects_dto.ListProjectsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/projects", "Bearer "+viewer.Token, http.StatusOK, &response)

	ids := make([]uuid.UUID, 0, len(response.Projects))
	for _, p := range response.Projects {
		ids = append(ids, p.ID)
	}

	assert.Contains(t, ids, ownedByViewer.ID)
	assert.Contains(t, ids, memberOf.ID)
	assert.NotContains(t, ids, unrelated.ID)

	// only_owned narrows to owned projects
	var ownedOnly projects_dto.ListProjectsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/projects?only_owned=true", "Bearer "+viewer.Token, http.StatusOK, &ownedOnly)

	ownedIDs := make([]uuid.UUID, 0, len(ownedOnly.Projects))
	for _, p := range ownedOnly.Projects {
		ownedIDs = append(ownedIDs, p.ID)
	}

	assert.Contains(t, ownedIDs, ownedByViewer.ID)
	assert.NotContains(t, ownedIDs, memberOf.ID)
}

func Test_AddMember_Twice_ReturnsConflict(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleOwner)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	project := projects_testing.CreateTestProjectViaAPI("Conflict Project", owner.Token, router)
	path := "/projects/" + project.ID.String() + "/members/" + member.Email

	test_utils.MakePostRequest(t, router, path, "Bearer "+owner.Token, nil, http.StatusCreated)

	resp := test_utils.MakePostRequest(t, router, path, "Bearer "+owner.Token, nil, http.StatusConflict)
	assert.Contains(t, string(resp.Body), "already a member")
}

func Test_AddMember_ByNonOwner_ReturnsForbidden(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleOwner)
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	project := projects_testing.CreateTestProjectViaAPI("Owner Gate Project", owner.Token, router)
	path := "/projects/" + project.ID.String() + "/members/" + member.Email

	// membership mutation is owner-only, even for admins
	test_utils.MakePostRequest(t, router, path, "Bearer "+admin.Token, nil, http.StatusForbidden)
}

func Test_AddMember_WithUnknownEmail_ReturnsNotFound(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleOwner)

	project := projects_testing.CreateTestProjectViaAPI("Unknown Email Project", owner.Token, router)
	path := "/projects/" + project.ID.String() + "/members/nobody-" + uuid.New().String() + "@test.com"

	test_utils.MakePostRequest(t, router, path, "Bearer "+owner.Token, nil, http.StatusNotFound)
}

func Test_RemoveMember_ByOwner_RevokesAccess(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleOwner)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	project := projects_testing.CreateTestProjectViaAPI("Revoke Project", owner.Token, router)
	projects_testing.AddMemberViaAPI(project.ID.String(), member.Email, owner.Token, router)

	projectPath := "/projects/" + project.ID.String()
	test_utils.MakeGetRequest(t, router, projectPath, "Bearer "+member.Token, http.StatusOK)

	var detail projects_dto.ProjectDetailResponseDTO
	resp := test_utils.MakeDeleteRequest(t, router,
		projectPath+"/members/"+member.UserID.String(), "Bearer "+owner.Token, http.StatusOK)
	require.NoError(t, json.Unmarshal(resp.Body, &detail))

	for _, projectMember := range detail.Members {
		assert.NotEqual(t, member.UserID, projectMember.ID)
	}

	test_utils.MakeGetRequest(t, router, projectPath, "Bearer "+member.Token, http.StatusForbidden)
}

func Test_RemoveMember_NotAMember_ReturnsNotFound(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleOwner)
	outsider := users_testing.CreateTestUser(users_enums.UserRoleMember)

	project := projects_testing.CreateTestProjectViaAPI("No Membership Project", owner.Token, router)

	test_utils.MakeDeleteRequest(t, router,
		"/projects/"+project.ID.String()+"/members/"+outsider.UserID.String(),
		"Bearer "+owner.Token, http.StatusNotFound)
}

func Test_UpdateProject_OnlyExactOwnerSucceeds_AdminRejected(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleOwner)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)

	project := projects_testing.CreateTestProjectViaAPI("Update Project", owner.Token, router)
	projects_testing.AddMemberViaAPI(project.ID.String(), member.Email, owner.Token, router)

	path := "/projects/" + project.ID.String()
	title := "Renamed Project"
	request := projects_dto.UpdateProjectRequestDTO{Title: &title}

	test_utils.MakePatchRequest(t, router, path, "Bearer "+admin.Token, request, http.StatusForbidden)
	test_utils.MakePatchRequest(t, router, path, "Bearer "+member.Token, request, http.StatusForbidden)

	var updated projects_dto.ProjectDetailResponseDTO
	test_utils.MakePatchRequestAndUnmarshal(t, router,
		path, "Bearer "+owner.Token, request, http.StatusOK, &updated)
	assert.Equal(t, "Renamed Project", updated.Title)
}

func Test_DeleteProject_OwnerAndAdminAllowed_OthersRejected(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserRoleOwner)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	outsider := users_testing.CreateTestUser(users_enums.UserRoleOwner)
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)

	ownerDeleted := projects_testing.CreateTestProjectViaAPI("Owner Deleted", owner.Token, router)
	adminDeleted := projects_testing.CreateTestProjectViaAPI("Admin Deleted", owner.Token, router)
	projects_testing.AddMemberViaAPI(ownerDeleted.ID.String(), member.Email, owner.Token, router)

	ownerDeletedPath := "/projects/" + ownerDeleted.ID.String()

	test_utils.MakeDeleteRequest(t, router, ownerDeletedPath, "Bearer "+member.Token, http.StatusForbidden)
	test_utils.MakeDeleteRequest(t, router, ownerDeletedPath, "Bearer "+outsider.Token, http.StatusForbidden)

	test_utils.MakeDeleteRequest(t, router, ownerDeletedPath, "Bearer "+owner.Token, http.StatusNoContent)
	test_utils.MakeGetRequest(t, router, ownerDeletedPath, "Bearer "+owner.Token, http.StatusNotFound)

	test_utils.MakeDeleteRequest(t, router,
		"/projects/"+adminDeleted.ID.String(), "Bearer "+admin.Token, http.StatusNoContent)
	test_utils.MakeGetRequest(t, router,
		"/projects/"+adminDeleted.ID.String(), "Bearer "+admin.Token, http.StatusNotFound)
}
