package models

import "time"

// Like represents "user X liked post Y". UserID is a free-form identifier
// rather than a foreign key into users. The composite unique index keeps at
// most one row per (post, user) pair, which is what makes ToggleLike safe
// under concurrent calls.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_post_user_like"`
	UserID    string    `json:"user_id" gorm:"size:64;uniqueIndex:idx_post_user_like"`
	CreatedAt time.Time `json:"created_at"`

	Post Post `json:"-" gorm:"foreignKey:PostID"`
}
