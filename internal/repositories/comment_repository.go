package repositories

import (
	"context"

	"github.com/openfeedhq/backend/internal/models"
	"github.com/openfeedhq/backend/internal/storeerr"
)

// Identity attached to comments created through AddComment, which carries no
// caller identity.
const (
	anonymousAuthor = "Anonymous"
	anonymousAvatar = "https://api.dicebear.com/7.x/identicon/svg?seed=anonymous"
)

// GetCommentsByPost retrieves all comments for a post, oldest first.
func (r *PostgresRepository) GetCommentsByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, storeerr.Classify(err)
	}
	return comments, nil
}

// GetComments returns just the content of each comment for a post, in the
// same oldest-first order as GetCommentsByPost.
func (r *PostgresRepository) GetComments(ctx context.Context, postID uint) ([]string, error) {
	var contents []string
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Pluck("content", &contents).Error
	if err != nil {
		return nil, storeerr.Classify(err)
	}
	return contents, nil
}

// AddComment inserts an anonymous comment: the content is caller-supplied,
// the author identity is the fixed placeholder.
func (r *PostgresRepository) AddComment(ctx context.Context, postID uint, text string) error {
	comment := models.Comment{
		PostID:  postID,
		Content: text,
		Author:  anonymousAuthor,
		Avatar:  anonymousAvatar,
	}
	if err := r.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return storeerr.Classify(err)
	}
	return nil
}

// CreateComment inserts a comment with the full record supplied by the
// caller and returns the persisted row.
func (r *PostgresRepository) CreateComment(ctx context.Context, input models.CreateCommentInput) (*models.Comment, error) {
	if err := r.validate.Struct(input); err != nil {
		return nil, err
	}
	comment := models.Comment{
		PostID:  input.PostID,
		Content: input.Content,
		Author:  input.Author,
		Avatar:  input.Avatar,
	}
	if err := r.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, storeerr.Classify(err)
	}
	return &comment, nil
}
