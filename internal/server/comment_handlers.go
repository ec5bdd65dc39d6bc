package server

import (
	"quill/internal/models"
	"quill/internal/observability"
	"quill/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// commentBody reads the comment text from the JSON body, falling back to the
// comment_body query parameter for clients that send it that way.
func commentBody(c *fiber.Ctx) string {
	var req struct {
		Body string `json:"body"`
	}
	if err := c.BodyParser(&req); err == nil && req.Body != "" {
		return req.Body
	}
	return c.Query("comment_body")
}

// ViewComments handles GET /post/view_comments/:post_id
func (s *Server) ViewComments(c *fiber.Ctx) error {
	postID := c.Params("post_id")

	// Comments are only visible through an existing post.
	if _, err := s.postRepo.GetByID(c.Context(), postID); err != nil {
		return fail(c, err)
	}

	comments, err := s.commentRepo.ListByPost(c.Context(), postID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"post_comments": comments})
}

// AddComment handles POST /post/add_comment/:post_id. Any authenticated user
// may comment on any existing post.
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID := c.Params("post_id")

	if _, err := s.postRepo.GetByID(c.Context(), postID); err != nil {
		return fail(c, err)
	}

	body := commentBody(c)
	if err := validation.ValidateCommentBody(body); err != nil {
		observability.ValidationFailures.WithLabelValues("comment").Inc()
		return fail(c, models.NewValidationError(err.Error()))
	}

	comment := &models.Comment{
		ID:        uuid.NewString(),
		Body:      body,
		CreatorID: currentUserID(c),
		PostID:    postID,
	}

	if err := s.commentRepo.Create(c.Context(), comment); err != nil {
		return fail(c, err)
	}

	observability.ResourceWrites.WithLabelValues("comment", "create").Inc()
	return c.JSON(fiber.Map{"comment": comment})
}

// UpdateComment handles PUT /post/update_comment/:id. Owner-scoped: a
// foreign comment is indistinguishable from a missing one.
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	commentID := c.Params("id")

	comment, err := s.commentRepo.GetOwned(c.Context(), commentID, currentUserID(c))
	if err != nil {
		return fail(c, err)
	}

	body := commentBody(c)
	if err := validation.ValidateCommentBody(body); err != nil {
		observability.ValidationFailures.WithLabelValues("comment").Inc()
		return fail(c, models.NewValidationError(err.Error()))
	}

	comment.Body = body
	if err := s.commentRepo.Update(c.Context(), comment); err != nil {
		return fail(c, err)
	}

	observability.ResourceWrites.WithLabelValues("comment", "update").Inc()
	return c.JSON(fiber.Map{"updated_comment": comment})
}

// DeleteComment handles DELETE /post/delete_comment/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID := c.Params("id")

	comment, err := s.commentRepo.DeleteOwned(c.Context(), commentID, currentUserID(c))
	if err != nil {
		return fail(c, err)
	}

	observability.ResourceWrites.WithLabelValues("comment", "delete").Inc()
	return c.JSON(fiber.Map{"deleted_comment": comment})
}
