package repositories

import (
	"context"
	"errors"

	"github.com/openfeedhq/backend/internal/models"
	"github.com/openfeedhq/backend/internal/storeerr"
	"gorm.io/gorm"
)

// GetPosts returns every post newest-first, each annotated with its like and
// comment counts. Counts come from one grouped left-join query, so the whole
// feed is a single consistent snapshot and childless posts keep their row
// with zero counts. The DISTINCT keeps the two joins from inflating each
// other's count.
func (r *PostgresRepository) GetPosts(ctx context.Context) ([]models.PostWithCounts, error) {
	var posts []models.PostWithCounts
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Select("posts.*, COUNT(DISTINCT likes.id) AS like_count, COUNT(DISTINCT comments.id) AS comment_count").
		Joins("LEFT JOIN likes ON likes.post_id = posts.id").
		Joins("LEFT JOIN comments ON comments.post_id = posts.id").
		Group("posts.id").
		Order("posts.created_at DESC, posts.id DESC").
		Scan(&posts).Error
	if err != nil {
		return nil, storeerr.Classify(err)
	}
	return posts, nil
}

// GetPost retrieves a post by id. A missing post is (nil, nil).
func (r *PostgresRepository) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeerr.Classify(err)
	}
	return &post, nil
}

// GetPostsByRoom returns every post newest-first. The schema has no room
// column, so roomID is accepted but not used for filtering; callers get the
// same result for every room until rooms exist end-to-end.
func (r *PostgresRepository) GetPostsByRoom(ctx context.Context, roomID string) ([]models.Post, error) {
	_ = roomID
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, storeerr.Classify(err)
	}
	return posts, nil
}

// CreatePost inserts a new post and returns the persisted row.
func (r *PostgresRepository) CreatePost(ctx context.Context, input models.CreatePostInput) (*models.Post, error) {
	if err := r.validate.Struct(input); err != nil {
		return nil, err
	}
	post := models.Post{
		AuthorName:   input.AuthorName,
		AuthorHandle: input.AuthorHandle,
		AuthorAvatar: input.AuthorAvatar,
		Content:      input.Content,
		Image:        input.Image,
	}
	if err := r.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, storeerr.Classify(err)
	}
	return &post, nil
}
