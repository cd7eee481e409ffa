package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/openfeedhq/backend/internal/models"
	"github.com/openfeedhq/backend/internal/storeerr"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestRepository opens an in-memory sqlite database and migrates the four
// tables. A single connection keeps every query on the same in-memory
// database.
func newTestRepository(t *testing.T) *PostgresRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("getting sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	); err != nil {
		t.Fatalf("migrating schema: %v", err)
	}
	return NewPostgresRepository(db)
}

func createTestUser(t *testing.T, repo *PostgresRepository, username string) *models.User {
	t.Helper()
	user, err := repo.CreateUser(context.Background(), models.CreateUserInput{
		Username:    username,
		DisplayName: "Test User",
	})
	if err != nil {
		t.Fatalf("creating user %q: %v", username, err)
	}
	return user
}

func createTestPost(t *testing.T, repo *PostgresRepository, content string) *models.Post {
	t.Helper()
	post, err := repo.CreatePost(context.Background(), models.CreatePostInput{
		AuthorName:   "Test Author",
		AuthorHandle: "tester",
		Content:      content,
	})
	if err != nil {
		t.Fatalf("creating post %q: %v", content, err)
	}
	return post
}

func TestGetUserAbsent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user, err := repo.GetUser(ctx, "no-such-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}

	// Absence stays absent after an unrelated write.
	createTestUser(t, repo, "somebody")
	user, err = repo.GetUser(ctx, "no-such-id")
	if err != nil {
		t.Fatalf("unexpected error after write: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user after write, got %+v", user)
	}
}

func TestCreateUserReturnsPersistedRow(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, models.CreateUserInput{
		Username:    "alice",
		DisplayName: "Alice",
		Bio:         "hello",
	})
	if err != nil {
		t.Fatalf("creating user: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected a generated id")
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected a creation timestamp")
	}

	byID, err := repo.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID == nil || byID.Username != "alice" {
		t.Fatalf("get by id returned %+v", byID)
	}

	byName, err := repo.GetUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if byName == nil || byName.ID != user.ID {
		t.Fatalf("get by username returned %+v", byName)
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	createTestUser(t, repo, "bob")
	_, err := repo.CreateUser(ctx, models.CreateUserInput{Username: "bob"})
	if err == nil {
		t.Fatal("expected an error for duplicate username")
	}
	if !storeerr.IsConstraintViolation(err) {
		t.Fatalf("expected constraint violation, got %v", err)
	}
}

func TestCreateUserRejectsEmptyUsername(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.CreateUser(context.Background(), models.CreateUserInput{})
	if err == nil {
		t.Fatal("expected validation error for empty username")
	}
}

func TestGetPostsZeroCounts(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	createTestPost(t, repo, "first")
	createTestPost(t, repo, "second")

	feed, err := repo.GetPosts(ctx)
	if err != nil {
		t.Fatalf("get posts: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(feed))
	}
	for _, post := range feed {
		if post.LikeCount != 0 || post.CommentCount != 0 {
			t.Fatalf("post %d: expected zero counts, got likes=%d comments=%d",
				post.ID, post.LikeCount, post.CommentCount)
		}
	}
}

func TestGetPostsCountsMatchPointQueries(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	p1 := createTestPost(t, repo, "popular")
	createTestPost(t, repo, "quiet")

	for i := 0; i < 3; i++ {
		if err := repo.AddLike(ctx, p1.ID, fmt.Sprintf("user-%d", i)); err != nil {
			t.Fatalf("adding like: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		if err := repo.AddComment(ctx, p1.ID, fmt.Sprintf("comment %d", i)); err != nil {
			t.Fatalf("adding comment: %v", err)
		}
	}

	feed, err := repo.GetPosts(ctx)
	if err != nil {
		t.Fatalf("get posts: %v", err)
	}
	for _, post := range feed {
		likes, err := repo.GetLikesCount(ctx, post.ID)
		if err != nil {
			t.Fatalf("likes count: %v", err)
		}
		comments, err := repo.GetCommentsByPost(ctx, post.ID)
		if err != nil {
			t.Fatalf("comments: %v", err)
		}
		if post.LikeCount != likes {
			t.Errorf("post %d: feed reports %d likes, point query %d", post.ID, post.LikeCount, likes)
		}
		if post.CommentCount != int64(len(comments)) {
			t.Errorf("post %d: feed reports %d comments, point query %d", post.ID, post.CommentCount, len(comments))
		}
	}
}

func TestGetPostsNewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	p1 := createTestPost(t, repo, "older")
	p2 := createTestPost(t, repo, "newer")

	feed, err := repo.GetPosts(ctx)
	if err != nil {
		t.Fatalf("get posts: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(feed))
	}
	if feed[0].ID != p2.ID || feed[1].ID != p1.ID {
		t.Fatalf("expected order [%d %d], got [%d %d]", p2.ID, p1.ID, feed[0].ID, feed[1].ID)
	}
}

func TestGetPostAbsent(t *testing.T) {
	repo := newTestRepository(t)

	post, err := repo.GetPost(context.Background(), 12345)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post != nil {
		t.Fatalf("expected nil post, got %+v", post)
	}
}

func TestGetPostsByRoomIgnoresRoom(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	p1 := createTestPost(t, repo, "older")
	p2 := createTestPost(t, repo, "newer")

	for _, roomID := range []string{"", "lobby", "no-such-room"} {
		posts, err := repo.GetPostsByRoom(ctx, roomID)
		if err != nil {
			t.Fatalf("room %q: %v", roomID, err)
		}
		if len(posts) != 2 {
			t.Fatalf("room %q: expected all posts, got %d", roomID, len(posts))
		}
		if posts[0].ID != p2.ID || posts[1].ID != p1.ID {
			t.Fatalf("room %q: expected newest first", roomID)
		}
	}
}
