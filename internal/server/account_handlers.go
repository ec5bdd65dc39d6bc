package server

import (
	"quill/internal/models"
	"quill/internal/observability"
	"quill/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CurrentUser handles GET /account
func (s *Server) CurrentUser(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByID(c.Context(), currentUserID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"user": user})
}

// UpdateUsername handles PUT /account/update_user/:name. The new username
// rides in the path; uniqueness is store-enforced and surfaces as 406.
func (s *Server) UpdateUsername(c *fiber.Ctx) error {
	name := c.Params("name")

	if err := validation.ValidateUsername(name); err != nil {
		observability.ValidationFailures.WithLabelValues("user").Inc()
		return fail(c, models.NewValidationError(err.Error()))
	}

	user, err := s.userRepo.UpdateUsername(c.Context(), currentUserID(c), name)
	if err != nil {
		if models.IsConflict(err) {
			observability.ConflictRollbacks.WithLabelValues("user").Inc()
		}
		return fail(c, err)
	}

	observability.ResourceWrites.WithLabelValues("user", "update").Inc()
	return c.JSON(fiber.Map{"user": user})
}

// DeleteAccount handles DELETE /account/delete_user. The user's posts and
// comments go with the account in a single transaction.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	user, err := s.userRepo.Delete(c.Context(), currentUserID(c))
	if err != nil {
		return fail(c, err)
	}

	observability.ResourceWrites.WithLabelValues("user", "delete").Inc()
	return c.JSON(fiber.Map{"deleted_user": user})
}
