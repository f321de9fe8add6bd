// handlers/auth.go - registration, login and OAuth login
package handlers

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"withme/models"
	"withme/services"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nickname string `json:"nickname" validate:"required,min=2,max=30"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserInfo struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	UserImage string    `json:"user_image"`
	JoinRoot  string    `json:"join_root"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserInfo(user *models.User) UserInfo {
	info := UserInfo{
		ID:        user.ID,
		Nickname:  user.Nickname,
		UserImage: user.UserImage,
		JoinRoot:  user.JoinRoot,
		CreatedAt: user.CreatedAt,
	}
	if user.Email != nil {
		info.Email = *user.Email
	}
	return info
}

// Register creates a new direct-signup account.
// POST /api/auth/register
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if ok, resp := validateRequest(c, &req); !ok {
		return resp
	}

	user, err := userService.Register(c.Context(), services.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Nickname: req.Nickname,
	})
	if err != nil {
		return writeError(c, err)
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to generate token"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    newUserInfo(user),
	})
}

// Login authenticates an email/password user.
// POST /api/auth/login
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if ok, resp := validateRequest(c, &req); !ok {
		return resp
	}

	user, err := userService.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    newUserInfo(user),
	})
}

// OAuthLogin upserts a user from a provider userinfo payload and issues a
// token. The OAuth handshake itself happens upstream; this endpoint
// receives the already-fetched attributes.
// POST /api/auth/oauth/:provider
func OAuthLogin(c *fiber.Ctx) error {
	provider := c.Params("provider")

	var attributes map[string]any
	if err := c.BodyParser(&attributes); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	user, err := userService.OAuthLogin(c.Context(), provider, attributes)
	if err != nil {
		return writeError(c, err)
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    newUserInfo(user),
	})
}

func generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"nickname": user.Nickname,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
