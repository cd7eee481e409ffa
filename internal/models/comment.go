package models

import "time"

// Comment on a post. Comments are never updated or deleted by this layer;
// created_at drives ordering (oldest first).
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	Post Post `json:"-" gorm:"foreignKey:PostID"`
}

// CreateCommentInput defines the request body for creating a comment with a
// caller-supplied author identity.
type CreateCommentInput struct {
	PostID  uint   `json:"post_id" validate:"required"`
	Content string `json:"content" validate:"required,min=1,max=500"`
	Author  string `json:"author" validate:"required,max=100"`
	Avatar  string `json:"avatar" validate:"omitempty,url"`
}
