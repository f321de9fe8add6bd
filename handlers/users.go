// handlers/users.go - profile endpoints
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"withme/middleware"
)

type UpdateImageRequest struct {
	UserImage string `json:"user_image" validate:"required"`
}

// MyPage returns the caller's nickname, avatar and team list.
// GET /api/users/mypage
func MyPage(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	page, err := userService.MyPage(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"mypage":  page,
	})
}

// UpdateImage replaces the caller's avatar.
// PUT /api/users/image
func UpdateImage(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req UpdateImageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if ok, resp := validateRequest(c, &req); !ok {
		return resp
	}

	if err := userService.UpdateImage(c.Context(), userID, req.UserImage); err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
