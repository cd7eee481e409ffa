package repositories

import (
	"context"
	"errors"

	"github.com/openfeedhq/backend/internal/models"
	"github.com/openfeedhq/backend/internal/storeerr"
	"gorm.io/gorm"
)

// GetUser retrieves a user by primary key. A missing user is (nil, nil).
func (r *PostgresRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeerr.Classify(err)
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by their unique username. A missing
// user is (nil, nil).
func (r *PostgresRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeerr.Classify(err)
	}
	return &user, nil
}

// CreateUser inserts a new user and returns the persisted row including the
// generated id and timestamp. A taken username surfaces as a constraint
// violation from the store; it is not pre-checked.
func (r *PostgresRepository) CreateUser(ctx context.Context, input models.CreateUserInput) (*models.User, error) {
	if err := r.validate.Struct(input); err != nil {
		return nil, err
	}
	user := models.User{
		Username:    input.Username,
		DisplayName: input.DisplayName,
		AvatarURL:   input.AvatarURL,
		Bio:         input.Bio,
	}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, storeerr.Classify(err)
	}
	return &user, nil
}
