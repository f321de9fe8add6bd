// handlers/teams.go - Team HTTP Handlers
package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"withme/middleware"
	"withme/models"
	"withme/services"
)

var (
	teamService *services.TeamService
	userService *services.UserService
)

// Init wires the handler package to its services.
func Init(team *services.TeamService, user *services.UserService) {
	teamService = team
	userService = user
}

type CreateTeamRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required,oneof=PROJECT STUDY"`
	Skills      []string `json:"skills"`
}

type UpdateTeamPostRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type AddCommentRequest struct {
	Content  string `json:"content" validate:"required"`
	ParentID uint   `json:"parent_id"`
}

type CreateNoticeRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content"`
}

// GetTeamList lists DISPLAYED teams, optionally filtered by skill tags.
// GET /api/teams?sort=0&skills=GO,REACT
func GetTeamList(c *fiber.Ctx) error {
	sort, _ := strconv.Atoi(c.Query("sort", "0"))

	var skills []string
	if raw := c.Query("skills"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
	}

	teams, err := teamService.SearchTeams(c.Context(), sort, skills)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"teams":   teams,
		"count":   len(teams),
	})
}

// CreateTeam registers a team with the caller as leader.
// POST /api/teams
func CreateTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if ok, resp := validateRequest(c, &req); !ok {
		return resp
	}

	teamID, err := teamService.CreateTeam(c.Context(), userID, services.CreateTeamInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    models.TeamCategory(req.Category),
		Skills:      req.Skills,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"team_id": teamID,
	})
}

// GetTeamDetail returns team detail with leader, comments and
// recommendations. Each call counts as one view.
// GET /api/teams/:id
func GetTeamDetail(c *fiber.Ctx) error {
	teamID, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team ID"})
	}

	detail, err := teamService.GetTeamDetail(c.Context(), teamID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"team":    detail,
	})
}

// UpdateTeamPost updates a team's name and description.
// PUT /api/teams/:id
func UpdateTeamPost(c *fiber.Ctx) error {
	teamID, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team ID"})
	}

	var req UpdateTeamPostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if ok, resp := validateRequest(c, &req); !ok {
		return resp
	}

	id, err := teamService.UpdateTeamPost(c.Context(), teamID, req.Name, req.Description)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"team_id": id,
	})
}

// AddComment creates a comment or a reply on a team.
// POST /api/teams/:id/comments
func AddComment(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	teamID, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team ID"})
	}

	var req AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if ok, resp := validateRequest(c, &req); !ok {
		return resp
	}

	commentID, err := teamService.AddComment(c.Context(), teamID, userID, req.Content, req.ParentID)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success":    true,
		"comment_id": commentID,
	})
}

// ToggleLike flips the caller's like on a team. No payload; callers
// re-query to observe state.
// POST /api/teams/:id/like
func ToggleLike(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	teamID, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team ID"})
	}

	if err := teamService.ToggleLike(c.Context(), teamID, userID); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetRecommendations returns the shuffled top-viewed DISPLAYED teams.
// GET /api/teams/recommend
func GetRecommendations(c *fiber.Ctx) error {
	teams, err := teamService.Recommend(c.Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"teams":   teams,
	})
}

// CreateNotice posts an announcement to a team the caller belongs to.
// POST /api/teams/:id/notices
func CreateNotice(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	teamID, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team ID"})
	}

	var req CreateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if ok, resp := validateRequest(c, &req); !ok {
		return resp
	}

	notice, err := teamService.CreateNotice(c.Context(), teamID, userID, req.Title, req.Content)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"notice":  notice,
	})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}
