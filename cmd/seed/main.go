// Command seed fills a live database with fake social-feed data by driving
// the repository end to end: users, posts, comments through both paths, like
// toggles, and finally the aggregated feed.
package main

import (
	"context"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/openfeedhq/backend/internal/models"
	"github.com/openfeedhq/backend/internal/repositories"
	"github.com/openfeedhq/backend/pkg/config"
	"github.com/openfeedhq/backend/pkg/logger"
)

const (
	userCount = 5
	postCount = 10
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("development", "info")
		boot.Fatal().Err(err).Msg("loading config")
	}
	log := logger.New(cfg.Env, cfg.LogLevel)

	db, err := config.InitDB(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to database")
	}
	defer db.CloseDB()

	// The seeder is allowed to create the tables; the library itself never
	// touches the schema.
	if err := db.Gorm.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	); err != nil {
		log.Fatal().Err(err).Msg("migrating schema")
	}

	repo := repositories.NewPostgresRepository(db.Gorm)
	ctx := context.Background()

	gofakeit.Seed(time.Now().UnixNano())

	users := make([]*models.User, 0, userCount)
	for i := 0; i < userCount; i++ {
		user, err := repo.CreateUser(ctx, models.CreateUserInput{
			Username:    gofakeit.Username(),
			DisplayName: gofakeit.Name(),
			AvatarURL:   gofakeit.ImageURL(128, 128),
			Bio:         gofakeit.Sentence(8),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("creating user")
		}
		users = append(users, user)
	}
	log.Info().Int("count", len(users)).Msg("seeded users")

	posts := make([]*models.Post, 0, postCount)
	for i := 0; i < postCount; i++ {
		author := users[gofakeit.Number(0, len(users)-1)]
		input := models.CreatePostInput{
			AuthorName:   author.DisplayName,
			AuthorHandle: author.Username,
			AuthorAvatar: author.AvatarURL,
			Content:      gofakeit.Sentence(12),
		}
		if gofakeit.Bool() {
			image := gofakeit.ImageURL(640, 480)
			input.Image = &image
		}
		post, err := repo.CreatePost(ctx, input)
		if err != nil {
			log.Fatal().Err(err).Msg("creating post")
		}
		posts = append(posts, post)
	}
	log.Info().Int("count", len(posts)).Msg("seeded posts")

	for _, post := range posts {
		for _, user := range users {
			if !gofakeit.Bool() {
				continue
			}
			liked, err := repo.ToggleLike(ctx, post.ID, user.ID)
			if err != nil {
				log.Fatal().Err(err).Msg("toggling like")
			}
			log.Debug().
				Uint("post", post.ID).
				Str("user", user.ID).
				Bool("liked", liked).
				Msg("toggled like")
		}
	}

	for _, post := range posts {
		if gofakeit.Bool() {
			author := users[gofakeit.Number(0, len(users)-1)]
			if _, err := repo.CreateComment(ctx, models.CreateCommentInput{
				PostID:  post.ID,
				Content: gofakeit.Sentence(10),
				Author:  author.DisplayName,
				Avatar:  author.AvatarURL,
			}); err != nil {
				log.Fatal().Err(err).Msg("creating comment")
			}
		}
		if gofakeit.Bool() {
			if err := repo.AddComment(ctx, post.ID, gofakeit.Sentence(6)); err != nil {
				log.Fatal().Err(err).Msg("adding anonymous comment")
			}
		}
	}

	feed, err := repo.GetPosts(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("reading feed")
	}
	for _, post := range feed {
		log.Info().
			Uint("post", post.ID).
			Str("author", post.AuthorHandle).
			Int64("likes", post.LikeCount).
			Int64("comments", post.CommentCount).
			Msg("seeded post")
	}
}
