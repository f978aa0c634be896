package users_controllers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	users_dto "taskhub/internal/features/users/dto"
	users_enums "taskhub/internal/features/users/enums"
	users_testing "taskhub/internal/features/users/testing"
	test_utils "taskhub/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Register_WithValidData_ReturnsUserWithoutPassword(t *testing.T) {
	router := createUserTestRouter()

	request := users_dto.RegisterRequestDTO{
		Email:     "register-" + uuid.New().String() + "@example.com",
		Password:  "testpassword123",
		FirstName: "Test",
		LastName:  "User",
	}

	resp := test_utils.MakePostRequest(t, router, "/users", "", request, http.StatusCreated)

	var response users_dto.UserResponseDTO
	require.NoError(t, json.Unmarshal(resp.Body, &response))

	assert.Equal(t, request.Email, response.Email)
	assert.Equal(t, users_enums.UserRoleMember, response.Role)
	assert.True(t, response.IsActive)
	assert.NotContains(t, string(resp.Body), "password")
}

func Test_Register_WithDuplicateEmail_ReturnsConflict(t *testing.T) {
	router := createUserTestRouter()

	request := users_dto.RegisterRequestDTO{
		Email:     "duplicate-" + uuid.New().String() + "@example.com",
		Password:  "testpassword123",
		FirstName: "Dup",
		LastName:  "User",
	}

	test_utils.MakePostRequest(t, router, "/users", "", request, http.StatusCreated)

	resp := test_utils.MakePostRequest(t, router, "/users", "", request, http.StatusConflict)
	assert.Contains(t, string(resp.Body), "already exists")
}

func Test_Register_WithValidationErrors_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	testCases := []struct {
		name    string
		request users_dto.RegisterRequestDTO
	}{
		{
			name: "missing email",
			request: users_dto.RegisterRequestDTO{
				Password: "testpassword123", FirstName: "A", LastName: "B",
			},
		},
		{
			name: "short password",
			request: users_dto.RegisterRequestDTO{
				Email: "short@example.com", Password: "short", FirstName: "A", LastName: "B",
			},
		},
		{
			name: "missing first name",
			request: users_dto.RegisterRequestDTO{
				Email: "noname@example.com", Password: "testpassword123", LastName: "B",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			test_utils.MakePostRequest(t, router, "/users", "", tc.request, http.StatusBadRequest)
		})
	}
}

func Test_IssueTokens_WithValidCredentials_ReturnsTokenPair(t *testing.T) {
	router := createUserTestRouter()
	password := "testpassword123"
	user := users_testing.CreateTestUserWithPassword(users_enums.UserRoleMember, password)

	form := url.Values{}
	form.Set("username", user.Email)
	form.Set("password", password)

	w := test_utils.MakeFormRequest(router, "/users/token", form)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response users_dto.TokenPairResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Greater(t, len(response.AccessToken), 10)
	assert.Greater(t, len(response.RefreshToken), 10)
	assert.Equal(t, "bearer", response.TokenType)

	// The issued access token resolves back to the same account.
	var profile users_dto.UserProfileResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(t, router,
		"/users/me", "Bearer "+response.AccessToken, http.StatusOK, &profile)
	assert.Equal(t, user.Email, profile.Email)
}

func Test_IssueTokens_WithWrongPassword_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()
	user := users_testing.CreateTestUserWithPassword(users_enums.UserRoleMember, "correct-password-1")

	form := url.Values{}
	form.Set("username", user.Email)
	form.Set("password", "wrong-password-1")

	w := test_utils.MakeFormRequest(router, "/users/token", form)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "incorrect email or password")
}

func Test_RefreshToken_WithValidRefreshToken_ReturnsNewAccessToken(t *testing.T) {
	router := createUserTestRouter()
	password := "testpassword123"
	user := users_testing.CreateTestUserWithPassword(users_enums.UserRoleMember, password)

	form := url.Values{}
	form.Set("username", user.Email)
	form.Set("password", password)

	w := test_utils.MakeFormRequest(router, "/users/token", form)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var pair users_dto.TokenPairResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pair))

	var refreshed users_dto.AccessTokenResponseDTO
	test_utils.MakePostRequestAndUnmarshal(t, router,
		"/users/refresh-token", "Bearer "+pair.RefreshToken, nil, http.StatusOK, &refreshed)

	assert.Greater(t, len(refreshed.AccessToken), 10)
	assert.Equal(t, "bearer", refreshed.TokenType)
}

func Test_RefreshToken_WithGarbageToken_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakePostRequest(t, router,
		"/users/refresh-token", "Bearer not-a-token", nil, http.StatusUnauthorized)
}
