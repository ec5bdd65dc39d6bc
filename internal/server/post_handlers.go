package server

import (
	"quill/internal/models"
	"quill/internal/observability"
	"quill/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ListPosts handles GET /
func (s *Server) ListPosts(c *fiber.Ctx) error {
	posts, err := s.postRepo.List(c.Context())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"posts": posts})
}

// CreatePost handles POST /create_post
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title string `json:"title"`
		Body  string `json:"post_data"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidatePostTitle(req.Title); err != nil {
		observability.ValidationFailures.WithLabelValues("post").Inc()
		return fail(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePostBody(req.Body); err != nil {
		observability.ValidationFailures.WithLabelValues("post").Inc()
		return fail(c, models.NewValidationError(err.Error()))
	}

	post := &models.Post{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Body:      req.Body,
		CreatorID: currentUserID(c),
	}

	if err := s.postRepo.Create(c.Context(), post); err != nil {
		if models.IsConflict(err) {
			observability.ConflictRollbacks.WithLabelValues("post").Inc()
		}
		return fail(c, err)
	}

	observability.ResourceWrites.WithLabelValues("post", "create").Inc()
	return c.JSON(fiber.Map{"post": post})
}

// UpdatePost handles PUT /update_post/:id. The lookup is scoped to the
// authenticated owner, so a foreign post answers 404 exactly like a missing
// one.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID := c.Params("id")

	var req struct {
		Title *string `json:"title"`
		Body  *string `json:"post_data"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postRepo.GetOwned(c.Context(), postID, currentUserID(c))
	if err != nil {
		return fail(c, err)
	}

	if req.Title == nil && req.Body == nil {
		observability.ValidationFailures.WithLabelValues("post").Inc()
		return fail(c, models.NewValidationError("title or post_data is required"))
	}

	if req.Title != nil {
		if err := validation.ValidatePostTitle(*req.Title); err != nil {
			observability.ValidationFailures.WithLabelValues("post").Inc()
			return fail(c, models.NewValidationError(err.Error()))
		}
		post.Title = *req.Title
	}
	if req.Body != nil {
		if err := validation.ValidatePostBody(*req.Body); err != nil {
			observability.ValidationFailures.WithLabelValues("post").Inc()
			return fail(c, models.NewValidationError(err.Error()))
		}
		post.Body = *req.Body
	}

	if err := s.postRepo.Update(c.Context(), post); err != nil {
		if models.IsConflict(err) {
			observability.ConflictRollbacks.WithLabelValues("post").Inc()
		}
		return fail(c, err)
	}

	observability.ResourceWrites.WithLabelValues("post", "update").Inc()
	return c.JSON(fiber.Map{"updated_post": post})
}

// DeletePost handles DELETE /delete_post/:id. Comments under the post are
// removed in the same transaction.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID := c.Params("id")

	post, err := s.postRepo.DeleteOwned(c.Context(), postID, currentUserID(c))
	if err != nil {
		return fail(c, err)
	}

	observability.ResourceWrites.WithLabelValues("post", "delete").Inc()
	return c.JSON(fiber.Map{"deleted_post": post})
}
