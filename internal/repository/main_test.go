package repository

import (
	"fmt"
	"strings"
	"testing"

	"quill/internal/database"
	"quill/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a fresh in-memory SQLite database with the full schema.
// Each test gets its own named shared-cache DB so pooled connections see the
// same data while tests stay isolated from each other.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Open(sqlite.Open(dsn), false)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     gofakeit.Username() + "-" + uuid.NewString()[:8],
		PasswordHash: "x",
	}
	require.NoError(t, NewUserRepository(db).Create(t.Context(), user))
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, creatorID string) *models.Post {
	t.Helper()

	post := &models.Post{
		ID:        uuid.NewString(),
		Title:     gofakeit.Sentence(4) + uuid.NewString()[:8],
		Body:      gofakeit.Sentence(40),
		CreatorID: creatorID,
	}
	require.NoError(t, NewPostRepository(db).Create(t.Context(), post))
	return post
}

func createTestComment(t *testing.T, db *gorm.DB, creatorID, postID string) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		ID:        uuid.NewString(),
		Body:      gofakeit.Sentence(8),
		CreatorID: creatorID,
		PostID:    postID,
	}
	require.NoError(t, NewCommentRepository(db).Create(t.Context(), comment))
	return comment
}
