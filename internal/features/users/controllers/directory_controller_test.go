package users_controllers

import (
	"fmt"
	"net/http"
	"testing"

	users_dto "taskhub/internal/features/users/dto"
	users_enums "taskhub/internal/features/users/enums"
	users_testing "taskhub/internal/features/users/testing"
	test_utils "taskhub/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_GetMyProfile_ReturnsCallerWithTasksCount(t *testing.T) {
	router := createUserTestRouter()
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	var profile users_dto.UserProfileResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/users/me", "Bearer "+user.Token, http.StatusOK, &profile)

	assert.Equal(t, user.Email, profile.Email)
	assert.Equal(t, user.UserID, profile.ID)
	assert.GreaterOrEqual(t, profile.TasksCount, int64(0))
}

func Test_GetMyProfile_WithoutToken_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakeGetRequest(t, router, "/users/me", "", http.StatusUnauthorized)
}

func Test_GetUsers_WithExistingUsers_ReturnsActiveUsersOnly(t *testing.T) {
	router := createUserTestRouter()
	caller := users_testing.CreateTestUser(users_enums.UserRoleMember)
	listed := users_testing.CreateTestUser(users_enums.UserRoleOwner)

	var response users_dto.ListUsersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/users", "Bearer "+caller.Token, http.StatusOK, &response)

	emails := make([]string, 0, len(response.Users))
	for _, u := range response.Users {
		emails = append(emails, u.Email)
	}

	assert.Contains(t, emails, caller.Email)
	assert.Contains(t, emails, listed.Email)
}

func Test_GetUser_WithUnknownID_ReturnsNotFound(t *testing.T) {
	router := createUserTestRouter()
	caller := users_testing.CreateTestUser(users_enums.UserRoleMember)

	test_utils.MakeGetRequest(t, router,
		"/users/"+uuid.New().String(), "Bearer "+caller.Token, http.StatusNotFound)
}

func Test_UpdateUser_SelfEditOfNames_Succeeds(t *testing.T) {
	router := createUserTestRouter()
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	firstName := "Renamed"
	request := users_dto.UpdateUserRequestDTO{FirstName: &firstName}

	var profile users_dto.UserProfileResponseDTO
	test_utils.MakePatchRequestAndUnmarshal(t, router,
		"/users/"+user.UserID.String(), "Bearer "+user.Token, request, http.StatusOK, &profile)

	assert.Equal(t, "Renamed", profile.FirstName)
}

func Test_UpdateUser_EditingAnotherUsersNames_ReturnsForbidden(t *testing.T) {
	router := createUserTestRouter()
	caller := users_testing.CreateTestUser(users_enums.UserRoleMember)
	target := users_testing.CreateTestUser(users_enums.UserRoleMember)

	firstName := "Hijacked"
	request := users_dto.UpdateUserRequestDTO{FirstName: &firstName}

	resp := test_utils.MakePatchRequest(t, router,
		"/users/"+target.UserID.String(), "Bearer "+caller.Token, request, http.StatusForbidden)
	assert.Contains(t, string(resp.Body), "cannot edit another user")
}

func Test_UpdateUser_NonAdminSettingRole_ReturnsForbidden(t *testing.T) {
	router := createUserTestRouter()
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	role := users_enums.UserRoleAdmin
	request := users_dto.UpdateUserRequestDTO{Role: &role}

	resp := test_utils.MakePatchRequest(t, router,
		"/users/"+user.UserID.String(), "Bearer "+user.Token, request, http.StatusForbidden)
	assert.Contains(t, string(resp.Body), "administrators")
}

func Test_UpdateUser_AdminSettingRoleAndPosition_Succeeds(t *testing.T) {
	router := createUserTestRouter()
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	target := users_testing.CreateTestUser(users_enums.UserRoleMember)

	role := users_enums.UserRoleManager
	position := "Team Lead"
	request := users_dto.UpdateUserRequestDTO{Role: &role, Position: &position}

	var profile users_dto.UserProfileResponseDTO
	test_utils.MakePatchRequestAndUnmarshal(t, router,
		"/users/"+target.UserID.String(), "Bearer "+admin.Token, request, http.StatusOK, &profile)

	assert.Equal(t, users_enums.UserRoleManager, profile.Role)
	if assert.NotNil(t, profile.Position) {
		assert.Equal(t, "Team Lead", *profile.Position)
	}
}

func Test_UpdateUser_AdminWithInvalidRole_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	target := users_testing.CreateTestUser(users_enums.UserRoleMember)

	role := users_enums.UserRole("superuser")
	request := users_dto.UpdateUserRequestDTO{Role: &role}

	test_utils.MakePatchRequest(t, router,
		fmt.Sprintf("/users/%s", target.UserID), "Bearer "+admin.Token, request, http.StatusBadRequest)
}
