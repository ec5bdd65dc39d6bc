// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"quill/internal/auth"
	"quill/internal/models"
	"quill/internal/validation"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestPassword is the password shared by all seeded accounts.
const TestPassword = "password123"

// Options configuration for the seeder
type Options struct {
	NumUsers        int
	NumPosts        int
	CommentsPerPost int
	ShouldClean     bool
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("clear existing data: %w", err)
		}
	}

	users, err := seedUsers(db, opts.NumUsers)
	if err != nil {
		return err
	}

	posts, err := seedPosts(db, users, opts.NumPosts)
	if err != nil {
		return err
	}

	if err := seedComments(db, users, posts, opts.CommentsPerPost); err != nil {
		return err
	}

	log.Printf("Seeding complete: %d users, %d posts", len(users), len(posts))
	return nil
}

// clearData removes all rows, children before parents.
func clearData(db *gorm.DB) error {
	for _, model := range []any{&models.Comment{}, &models.Post{}, &models.User{}} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(db *gorm.DB, n int) ([]*models.User, error) {
	// One hash for all seeded accounts; bcrypt per-user is noticeably slow.
	hash, err := auth.HashPassword(TestPassword)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			ID:           uuid.NewString(),
			Username:     fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), i),
			PasswordHash: hash,
		}
		if err := db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("seed user %d: %w", i, err)
		}
		users = append(users, user)
	}
	return users, nil
}

func seedPosts(db *gorm.DB, users []*models.User, n int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		post := &models.Post{
			ID:        uuid.NewString(),
			Title:     postTitle(i),
			Body:      postBody(),
			CreatorID: users[rand.Intn(len(users))].ID,
		}
		if err := db.Create(post).Error; err != nil {
			return nil, fmt.Errorf("seed post %d: %w", i, err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func seedComments(db *gorm.DB, users []*models.User, posts []*models.Post, perPost int) error {
	if len(users) == 0 {
		return nil
	}

	for _, post := range posts {
		for i := 0; i < perPost; i++ {
			comment := &models.Comment{
				ID:        uuid.NewString(),
				Body:      gofakeit.Sentence(4 + rand.Intn(12)),
				CreatorID: users[rand.Intn(len(users))].ID,
				PostID:    post.ID,
			}
			if err := db.Create(comment).Error; err != nil {
				return fmt.Errorf("seed comment on post %s: %w", post.ID, err)
			}
		}
	}
	return nil
}

// postTitle generates a title within the accepted length bounds, kept unique
// by an index suffix.
func postTitle(i int) string {
	title := fmt.Sprintf("%s #%d", strings.TrimSuffix(gofakeit.Sentence(4), "."), i)
	if len(title) < validation.TitleMinLength {
		title = title + strings.Repeat("!", validation.TitleMinLength-len(title))
	}
	if len(title) > validation.TitleMaxLength {
		title = title[:validation.TitleMaxLength]
	}
	return title
}

// postBody generates a body within the accepted word-count bounds.
func postBody() string {
	words := validation.BodyMinWords + rand.Intn(validation.BodyMaxWords-validation.BodyMinWords+1)
	return strings.TrimSuffix(gofakeit.Sentence(words), ".")
}
