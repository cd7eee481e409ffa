package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an identity record created once at registration. This layer never
// updates or deletes users.
type User struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Username    string    `json:"username" gorm:"uniqueIndex;size:50"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
	Bio         string    `json:"bio"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate assigns an opaque id when the caller didn't supply one.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// CreateUserInput defines the fields accepted when registering a user.
// Username uniqueness is enforced by the database, not checked here.
type CreateUserInput struct {
	Username    string `json:"username" validate:"required,min=1,max=50"`
	DisplayName string `json:"display_name" validate:"max=100"`
	AvatarURL   string `json:"avatar_url" validate:"omitempty,url"`
	Bio         string `json:"bio" validate:"max=500"`
}
