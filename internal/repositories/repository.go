package repositories

import (
	"context"

	"github.com/openfeedhq/backend/internal/models"
	"github.com/openfeedhq/backend/internal/validators"
	"gorm.io/gorm"
)

// Repository is the single facade over the four backing tables. Every
// operation is an independent round-trip to the store; point lookups return
// (nil, nil) when no row matches.
type Repository interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, input models.CreateUserInput) (*models.User, error)

	GetPosts(ctx context.Context) ([]models.PostWithCounts, error)
	GetPost(ctx context.Context, id uint) (*models.Post, error)
	GetPostsByRoom(ctx context.Context, roomID string) ([]models.Post, error)
	CreatePost(ctx context.Context, input models.CreatePostInput) (*models.Post, error)

	GetLikesByPost(ctx context.Context, postID uint) ([]models.Like, error)
	GetLikesCount(ctx context.Context, postID uint) (int64, error)
	CheckUserLike(ctx context.Context, postID uint, userID string) (bool, error)
	CheckLike(ctx context.Context, postID uint, userID string) (bool, error)
	AddLike(ctx context.Context, postID uint, userID string) error
	ToggleLike(ctx context.Context, postID uint, userID string) (liked bool, err error)

	GetCommentsByPost(ctx context.Context, postID uint) ([]models.Comment, error)
	GetComments(ctx context.Context, postID uint) ([]string, error)
	AddComment(ctx context.Context, postID uint, text string) error
	CreateComment(ctx context.Context, input models.CreateCommentInput) (*models.Comment, error)
}

// PostgresRepository implements Repository over a gorm database handle. The
// handle is injected so tests can substitute another dialector; the
// repository holds it for its whole lifetime and leaves pooling to the
// driver.
type PostgresRepository struct {
	db       *gorm.DB
	validate *validators.Validator
}

var _ Repository = (*PostgresRepository)(nil)

// NewPostgresRepository creates a new PostgresRepository.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{
		db:       db,
		validate: validators.New(),
	}
}
