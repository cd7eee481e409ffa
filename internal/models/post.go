package models

import "time"

// Post is a feed entry. Posts are never mutated or deleted by this layer;
// created_at drives feed ordering (newest first).
type Post struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	AuthorName   string    `json:"author_name"`
	AuthorHandle string    `json:"author_handle" gorm:"index"`
	AuthorAvatar string    `json:"author_avatar"`
	Content      string    `json:"content"`
	Image        *string   `json:"image,omitempty"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
}

// PostWithCounts is a post annotated with its aggregate like and comment
// counts. Posts without children carry zero counts, never a missing row.
type PostWithCounts struct {
	Post         `gorm:"embedded"`
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
}

// CreatePostInput defines the request body for creating a new post.
type CreatePostInput struct {
	AuthorName   string  `json:"author_name" validate:"required,max=100"`
	AuthorHandle string  `json:"author_handle" validate:"required,max=50"`
	AuthorAvatar string  `json:"author_avatar" validate:"omitempty,url"`
	Content      string  `json:"content" validate:"required,min=1,max=500"`
	Image        *string `json:"image,omitempty" validate:"omitempty,url"`
}
