// handlers/respond.go - domain error to HTTP status mapping
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"withme/models"
)

func writeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := "Internal server error"

	switch {
	case errors.Is(err, models.ErrTeamNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrLeaderNotFound),
		errors.Is(err, models.ErrCommentNotFound):
		status = fiber.StatusNotFound
		msg = err.Error()
	case errors.Is(err, models.ErrTeamNameTaken),
		errors.Is(err, models.ErrNicknameTaken),
		errors.Is(err, models.ErrEmailTaken):
		status = fiber.StatusConflict
		msg = err.Error()
	case errors.Is(err, models.ErrReplyDepth),
		errors.Is(err, models.ErrNotTeamMember),
		errors.Is(err, models.ErrUnknownSkill),
		errors.Is(err, models.ErrUnknownProvider):
		status = fiber.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, models.ErrUnauthorized):
		status = fiber.StatusUnauthorized
		msg = "Invalid credentials"
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}
