package server

import (
	"errors"

	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// currentUserID returns the authenticated user's id set by AuthRequired.
// Handlers behind the middleware can assume it is present.
func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}

// statusForError maps an application error to the HTTP status the API
// contract promises: 404 for not-found (which deliberately covers
// foreign-owned resources), 406 for validation and uniqueness conflicts,
// 401 for authentication failures, 500 otherwise.
func statusForError(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND":
			return fiber.StatusNotFound
		case "VALIDATION_ERROR", "CONFLICT":
			return fiber.StatusNotAcceptable
		case "UNAUTHORIZED":
			return fiber.StatusUnauthorized
		}
	}
	return fiber.StatusInternalServerError
}

// fail writes the standardized error response with the contract status code.
func fail(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, statusForError(err), err)
}
