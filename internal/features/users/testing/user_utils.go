package users_testing

import (
	"fmt"
	"strings"
	"time"

	users_enums "taskhub/internal/features/users/enums"
	users_models "taskhub/internal/features/users/models"
	users_repositories "taskhub/internal/features/users/repositories"
	users_services "taskhub/internal/features/users/services"
	"taskhub/internal/util/passwords"

	"github.com/google/uuid"
)

type TestUser struct {
	UserID uuid.UUID
	Email  string
	Token  string
	User   *users_models.User
}

// CreateTestUser inserts an active user with the given role directly through
// the repository and signs a real access token for it.
func CreateTestUser(role users_enums.UserRole) *TestUser {
	userID := uuid.New()
	email := fmt.Sprintf("%s-%s@test.com", strings.ToLower(string(role)), userID.String()[:8])

	user := &users_models.User{
		ID:             userID,
		Email:          email,
		FirstName:      strings.ToUpper(string(role)[:1]) + string(role)[1:],
		LastName:       userID.String()[:8],
		HashedPassword: "$argon2id$v=19$m=65536,t=1,p=4$dGVzdHNhbHQ$dGVzdGhhc2g",
		Role:           role,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}

	userRepository := &users_repositories.UserRepository{}
	if err := userRepository.CreateUser(user); err != nil {
		panic(err)
	}

	token, err := users_services.GetUserService().GenerateAccessToken(user)
	if err != nil {
		panic(err)
	}

	return &TestUser{
		UserID: userID,
		Email:  email,
		Token:  token,
		User:   user,
	}
}

// CreateTestUserWithPassword registers a user whose credentials work against
// the token endpoint.
func CreateTestUserWithPassword(role users_enums.UserRole, password string) *TestUser {
	testUser := CreateTestUser(role)

	hashed, err := passwords.HashPassword(password)
	if err != nil {
		panic(err)
	}

	userRepository := &users_repositories.UserRepository{}
	if err := userRepository.UpdateUserFields(testUser.UserID, map[string]any{
		"hashed_password": hashed,
	}); err != nil {
		panic(err)
	}

	return testUser
}
