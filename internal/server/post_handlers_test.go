package server

import (
	"net/http/httptest"
	"strings"
	"testing"

	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// asUser fakes the auth middleware so handlers see an authenticated caller.
func asUser(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
}

func validPostBody(words int) string {
	return strings.TrimSpace(strings.Repeat("word ", words))
}

func TestListPosts(t *testing.T) {
	s, _, postRepo, _ := newTestServer(t)

	posts := []*models.Post{
		{ID: "post-2", Title: "The Second Post Title", CreatorID: "user-1"},
		{ID: "post-1", Title: "The First Post Title!", CreatorID: "user-2"},
	}
	postRepo.On("List", mock.Anything).Return(posts, nil)

	app := fiber.New()
	app.Get("/", asUser("user-1"), s.ListPosts)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	returned := body["posts"].([]any)
	require.Len(t, returned, 2)
	assert.Equal(t, "post-2", returned[0].(map[string]any)["id"])
}

func TestCreatePost(t *testing.T) {
	tests := []struct {
		name           string
		title          string
		body           string
		mockSetup      func(repo *MockPostRepository)
		expectedStatus int
	}{
		{
			name:  "Success",
			title: "A Perfectly Valid Title",
			body:  validPostBody(40),
			mockSetup: func(repo *MockPostRepository) {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Post")).Return(nil)
			},
			expectedStatus: fiber.StatusOK,
		},
		{
			name:           "Title too short",
			title:          "Short Title", // 11 runes
			body:           validPostBody(40),
			mockSetup:      func(repo *MockPostRepository) {},
			expectedStatus: fiber.StatusNotAcceptable,
		},
		{
			name:           "Title too long",
			title:          strings.Repeat("t", 101),
			body:           validPostBody(40),
			mockSetup:      func(repo *MockPostRepository) {},
			expectedStatus: fiber.StatusNotAcceptable,
		},
		{
			name:           "Body too short",
			title:          "A Perfectly Valid Title",
			body:           validPostBody(29),
			mockSetup:      func(repo *MockPostRepository) {},
			expectedStatus: fiber.StatusNotAcceptable,
		},
		{
			name:           "Body too long",
			title:          "A Perfectly Valid Title",
			body:           validPostBody(101),
			mockSetup:      func(repo *MockPostRepository) {},
			expectedStatus: fiber.StatusNotAcceptable,
		},
		{
			name:  "Duplicate title",
			title: "A Perfectly Valid Title",
			body:  validPostBody(40),
			mockSetup: func(repo *MockPostRepository) {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Post")).
					Return(models.NewConflictError("can not have duplicate titles"))
			},
			expectedStatus: fiber.StatusNotAcceptable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, postRepo, _ := newTestServer(t)
			tt.mockSetup(postRepo)

			app := fiber.New()
			app.Post("/create_post", asUser("user-1"), s.CreatePost)

			resp, err := app.Test(jsonRequest(t, "POST", "/create_post",
				map[string]string{"title": tt.title, "post_data": tt.body}))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			postRepo.AssertExpectations(t)
		})
	}
}

func TestCreatePost_SetsCreator(t *testing.T) {
	s, _, postRepo, _ := newTestServer(t)

	var created *models.Post
	postRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Post")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.Post)
		}).Return(nil)

	app := fiber.New()
	app.Post("/create_post", asUser("user-1"), s.CreatePost)

	resp, err := app.Test(jsonRequest(t, "POST", "/create_post",
		map[string]string{"title": "A Perfectly Valid Title", "post_data": validPostBody(30)}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotNil(t, created)
	assert.Equal(t, "user-1", created.CreatorID)
	assert.NotEmpty(t, created.ID)

	body := decodeBody(t, resp)
	assert.Equal(t, created.ID, body["post"].(map[string]any)["id"])
}

func TestUpdatePost(t *testing.T) {
	owned := func() *models.Post {
		return &models.Post{
			ID:        "post-1",
			Title:     "The Original Post Title",
			Body:      validPostBody(35),
			CreatorID: "user-1",
		}
	}
	newTitle := "A Freshly Updated Title"

	tests := []struct {
		name           string
		body           map[string]any
		mockSetup      func(repo *MockPostRepository)
		expectedStatus int
	}{
		{
			name: "Update title only",
			body: map[string]any{"title": newTitle},
			mockSetup: func(repo *MockPostRepository) {
				repo.On("GetOwned", mock.Anything, "post-1", "user-1").Return(owned(), nil)
				repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Post")).Return(nil)
			},
			expectedStatus: fiber.StatusOK,
		},
		{
			name: "Update body only",
			body: map[string]any{"post_data": validPostBody(50)},
			mockSetup: func(repo *MockPostRepository) {
				repo.On("GetOwned", mock.Anything, "post-1", "user-1").Return(owned(), nil)
				repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Post")).Return(nil)
			},
			expectedStatus: fiber.StatusOK,
		},
		{
			name: "No fields supplied",
			body: map[string]any{},
			mockSetup: func(repo *MockPostRepository) {
				repo.On("GetOwned", mock.Anything, "post-1", "user-1").Return(owned(), nil)
			},
			expectedStatus: fiber.StatusNotAcceptable,
		},
		{
			name: "Invalid replacement title",
			body: map[string]any{"title": "Tiny"},
			mockSetup: func(repo *MockPostRepository) {
				repo.On("GetOwned", mock.Anything, "post-1", "user-1").Return(owned(), nil)
			},
			expectedStatus: fiber.StatusNotAcceptable,
		},
		{
			name: "Not owned or missing",
			body: map[string]any{"title": newTitle},
			mockSetup: func(repo *MockPostRepository) {
				repo.On("GetOwned", mock.Anything, "post-1", "user-1").
					Return(nil, models.NewNotFoundError("post"))
			},
			expectedStatus: fiber.StatusNotFound,
		},
		{
			name: "New title collides",
			body: map[string]any{"title": newTitle},
			mockSetup: func(repo *MockPostRepository) {
				repo.On("GetOwned", mock.Anything, "post-1", "user-1").Return(owned(), nil)
				repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Post")).
					Return(models.NewConflictError("can not have duplicate titles"))
			},
			expectedStatus: fiber.StatusNotAcceptable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, postRepo, _ := newTestServer(t)
			tt.mockSetup(postRepo)

			app := fiber.New()
			app.Put("/update_post/:id", asUser("user-1"), s.UpdatePost)

			resp, err := app.Test(jsonRequest(t, "PUT", "/update_post/post-1", tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == fiber.StatusOK {
				body := decodeBody(t, resp)
				assert.Contains(t, body, "updated_post")
			}
			postRepo.AssertExpectations(t)
		})
	}
}

func TestDeletePost(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s, _, postRepo, _ := newTestServer(t)

		deleted := &models.Post{ID: "post-1", Title: "The Original Post Title", CreatorID: "user-1"}
		postRepo.On("DeleteOwned", mock.Anything, "post-1", "user-1").Return(deleted, nil)

		app := fiber.New()
		app.Delete("/delete_post/:id", asUser("user-1"), s.DeletePost)

		resp, err := app.Test(httptest.NewRequest("DELETE", "/delete_post/post-1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "post-1", body["deleted_post"].(map[string]any)["id"])
	})

	t.Run("Foreign post reported as missing", func(t *testing.T) {
		s, _, postRepo, _ := newTestServer(t)

		postRepo.On("DeleteOwned", mock.Anything, "post-1", "user-2").
			Return(nil, models.NewNotFoundError("post"))

		app := fiber.New()
		app.Delete("/delete_post/:id", asUser("user-2"), s.DeletePost)

		resp, err := app.Test(httptest.NewRequest("DELETE", "/delete_post/post-1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
