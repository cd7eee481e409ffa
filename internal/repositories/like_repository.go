package repositories

import (
	"context"

	"github.com/openfeedhq/backend/internal/models"
	"github.com/openfeedhq/backend/internal/storeerr"
	"gorm.io/gorm/clause"
)

// GetLikesByPost retrieves all like rows for a post, in no particular order.
func (r *PostgresRepository) GetLikesByPost(ctx context.Context, postID uint) ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Find(&likes).Error; err != nil {
		return nil, storeerr.Classify(err)
	}
	return likes, nil
}

// GetLikesCount returns the number of likes for a post, 0 when there are
// none.
func (r *PostgresRepository) GetLikesCount(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, storeerr.Classify(err)
	}
	return count, nil
}

// CheckUserLike reports whether a like row exists for the exact
// (post, user) pair.
func (r *PostgresRepository) CheckUserLike(ctx context.Context, postID uint, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, storeerr.Classify(err)
	}
	return count > 0, nil
}

// CheckLike is an alias for CheckUserLike kept for callers using the older
// name.
func (r *PostgresRepository) CheckLike(ctx context.Context, postID uint, userID string) (bool, error) {
	return r.CheckUserLike(ctx, postID, userID)
}

// AddLike unconditionally inserts a like row. It does not check for an
// existing like; a second insert for the same pair is rejected by the unique
// index and surfaces as a constraint violation. Callers flipping like state
// must use ToggleLike.
func (r *PostgresRepository) AddLike(ctx context.Context, postID uint, userID string) error {
	like := models.Like{PostID: postID, UserID: userID}
	if err := r.db.WithContext(ctx).Create(&like).Error; err != nil {
		return storeerr.Classify(err)
	}
	return nil
}

// ToggleLike flips the like state for a (post, user) pair: an existing row
// is deleted (liked=false), otherwise one is inserted (liked=true). The
// delete is the decision point; the insert runs only when the delete
// affected zero rows and uses ON CONFLICT DO NOTHING against the composite
// unique index, so concurrent toggles for the same pair can never leave more
// than one row. When a concurrent toggle wins the insert race the row exists
// either way, so liked=true stays accurate.
func (r *PostgresRepository) ToggleLike(ctx context.Context, postID uint, userID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Like{})
	if res.Error != nil {
		return false, storeerr.Classify(res.Error)
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	like := models.Like{PostID: postID, UserID: userID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&like).Error
	if err != nil {
		return false, storeerr.Classify(err)
	}
	return true, nil
}
