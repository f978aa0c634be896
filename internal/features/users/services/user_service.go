package users_services

import (
	"fmt"
	"time"

	"taskhub/internal/config"
	users_dto "taskhub/internal/features/users/dto"
	users_enums "taskhub/internal/features/users/enums"
	users_interfaces "taskhub/internal/features/users/interfaces"
	users_models "taskhub/internal/features/users/models"
	users_repositories "taskhub/internal/features/users/repositories"
	"taskhub/internal/util/apperrors"
	"taskhub/internal/util/passwords"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	accessTokenLifetime  = 30 * time.Minute
	refreshTokenLifetime = 7 * 24 * time.Hour
)

type UserService struct {
	userRepository *users_repositories.UserRepository
	// set by audit_logs DI, never nil after startup
	auditLogWriter users_interfaces.AuditLogWriter
}

func (s *UserService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *UserService) Register(request *users_dto.RegisterRequestDTO) (*users_dto.UserResponseDTO, error) {
	existingUser, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return nil, apperrors.Conflict("user with this email already exists")
	}

	hashedPassword, err := passwords.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &users_models.User{
		ID:             uuid.New(),
		Email:          request.Email,
		FirstName:      request.FirstName,
		LastName:       request.LastName,
		Position:       request.Position,
		HashedPassword: hashedPassword,
		Role:           users_enums.UserRoleMember,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("User registered with email: %s", user.Email),
		&user.ID,
		nil,
	)

	response := users_dto.NewUserResponseDTO(user)
	return &response, nil
}

// IssueTokens authenticates the user and returns an access/refresh pair.
func (s *UserService) IssueTokens(request *users_dto.TokenRequestDTO) (*users_dto.TokenPairResponseDTO, error) {
	user, err := s.userRepository.GetActiveUserByEmail(request.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil || !passwords.VerifyPassword(request.Password, user.HashedPassword) {
		return nil, apperrors.Unauthenticated("incorrect email or password")
	}

	accessToken, err := s.signToken(user, accessTokenLifetime)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.signToken(user, refreshTokenLifetime)
	if err != nil {
		return nil, err
	}

	return &users_dto.TokenPairResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// RefreshAccessToken validates the refresh token, re-resolves the user by
// email and issues a fresh access token. Refresh tokens are not rotated.
func (s *UserService) RefreshAccessToken(refreshToken string) (*users_dto.AccessTokenResponseDTO, error) {
	user, err := s.GetUserFromToken(refreshToken)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.signToken(user, accessTokenLifetime)
	if err != nil {
		return nil, err
	}

	return &users_dto.AccessTokenResponseDTO{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// GetUserFromToken resolves a bearer token to the live user record. Role
// and id claims are only display hints; authorization always runs against
// the freshly loaded row.
func (s *UserService) GetUserFromToken(tokenString string) (*users_models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(config.GetEnv().SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Unauthenticated("could not validate credentials")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.Unauthenticated("invalid token claims")
	}

	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return nil, apperrors.Unauthenticated("invalid token claims")
	}

	user, err := s.userRepository.GetActiveUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, apperrors.Unauthenticated("could not validate credentials")
	}

	return user, nil
}

// GenerateAccessToken signs an access token for an already-loaded user,
// bypassing the password check. Used by bootstrap flows and test setup.
func (s *UserService) GenerateAccessToken(user *users_models.User) (string, error) {
	return s.signToken(user, accessTokenLifetime)
}

func (s *UserService) signToken(user *users_models.User, lifetime time.Duration) (string, error) {
	now := time.Now().UTC()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.Email,
		"role": string(user.Role),
		"id":   user.ID.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(lifetime).Unix(),
	})

	signed, err := token.SignedString([]byte(config.GetEnv().SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (s *UserService) GetUserByEmail(email string) (*users_models.User, error) {
	return s.userRepository.GetUserByEmail(email)
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) GetActiveUserByID(userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetActiveUserByID(userID)
}

// ChangeUserPasswordByEmail backs the operational password-reset flag.
func (s *UserService) ChangeUserPasswordByEmail(email string, newPassword string) error {
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return apperrors.NotFound("user not found")
	}

	hashedPassword, err := passwords.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepository.UpdateUserFields(user.ID, map[string]any{
		"hashed_password": hashedPassword,
	})
}

// CreateInitialAdmin bootstraps the admin account from config. It is a
// no-op when the credentials are unset or the account already exists.
func (s *UserService) CreateInitialAdmin() error {
	env := config.GetEnv()
	if env.InitialAdminEmail == "" || env.InitialAdminPassword == "" {
		return nil
	}

	existing, err := s.userRepository.GetUserByEmail(env.InitialAdminEmail)
	if err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}

	if existing != nil {
		return nil
	}

	hashedPassword, err := passwords.HashPassword(env.InitialAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &users_models.User{
		ID:             uuid.New(),
		Email:          env.InitialAdminEmail,
		FirstName:      "Admin",
		LastName:       "Admin",
		HashedPassword: hashedPassword,
		Role:           users_enums.UserRoleAdmin,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}

	return s.userRepository.CreateUser(admin)
}
