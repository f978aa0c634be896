package users_repositories

import (
	users_enums "taskhub/internal/features/users/enums"
	users_models "taskhub/internal/features/users/models"
	"taskhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct{}

func (r *UserRepository) CreateUser(user *users_models.User) error {
	return storage.GetDb().Create(user).Error
}

func (r *UserRepository) GetUserByEmail(email string) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

// GetActiveUserByEmail ignores deactivated accounts; token resolution and
// login go through here.
func (r *UserRepository) GetActiveUserByEmail(email string) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().
		Where("email = ? AND is_active = ?", email, true).
		First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("id = ?", userID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetActiveUserByID(userID uuid.UUID) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().
		Where("id = ? AND is_active = ?", userID, true).
		First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

// GetActiveUsers returns active users ordered by first name.
func (r *UserRepository) GetActiveUsers() ([]*users_models.User, error) {
	var users []*users_models.User

	err := storage.GetDb().
		Where("is_active = ?", true).
		Order("first_name ASC").
		Find(&users).Error

	return users, err
}

// GetUsersByIDs loads the given users in one query; missing IDs are
// silently absent from the result.
func (r *UserRepository) GetUsersByIDs(userIDs []uuid.UUID) ([]*users_models.User, error) {
	var users []*users_models.User

	if len(userIDs) == 0 {
		return users, nil
	}

	err := storage.GetDb().
		Where("id IN ?", userIDs).
		Find(&users).Error

	return users, err
}

func (r *UserRepository) UpdateUserFields(userID uuid.UUID, fields map[string]any) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(fields).Error
}

func (r *UserRepository) UpdateUserRole(userID uuid.UUID, role users_enums.UserRole) error {
	return r.UpdateUserFields(userID, map[string]any{"role": role})
}
