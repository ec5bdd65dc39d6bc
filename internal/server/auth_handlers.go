package server

import (
	"quill/internal/auth"
	"quill/internal/models"
	"quill/internal/observability"
	"quill/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Register handles POST /auth. Validation runs before any store interaction;
// username uniqueness is left to the store and surfaced as a 406 conflict.
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateCredentials(req.Username, req.Password); err != nil {
		observability.ValidationFailures.WithLabelValues("user").Inc()
		return fail(c, models.NewValidationError(err.Error()))
	}

	digest, err := auth.HashPassword(req.Password)
	if err != nil {
		return fail(c, models.NewInternalError(err))
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: digest,
	}

	if err := s.userRepo.Create(c.Context(), user); err != nil {
		return fail(c, err)
	}

	observability.ResourceWrites.WithLabelValues("user", "create").Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"created_user": user,
	})
}

// Login handles POST /auth/token. Unknown usernames and wrong passwords are
// indistinguishable to the caller.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByUsername(c.Context(), req.Username)
	if err != nil {
		return fail(c, err)
	}
	if user == nil || !auth.VerifyPassword(req.Password, user.PasswordHash) {
		observability.AuthFailures.WithLabelValues("bad_credentials").Inc()
		return fail(c, models.NewUnauthorizedError("Could not validate user"))
	}

	token, err := s.tokens.Issue(user.Username, user.ID, s.tokenTTL())
	if err != nil {
		return fail(c, models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}
