// services/dto.go - response payloads assembled from persisted records
package services

import (
	"time"

	"withme/models"
)

type TeamListItem struct {
	ID          uint                `json:"id"`
	Name        string              `json:"name"`
	Category    models.TeamCategory `json:"category"`
	Description string              `json:"description"`
	Status      models.TeamStatus   `json:"status"`
	ViewCount   int                 `json:"view_count"`
	Skills      []models.SkillName  `json:"skills"`
	CreatedAt   time.Time           `json:"created_at"`
}

func newTeamListItem(team *models.Team) TeamListItem {
	return TeamListItem{
		ID:          team.ID,
		Name:        team.Name,
		Category:    team.Category,
		Description: team.Description,
		Status:      team.Status,
		ViewCount:   team.ViewCount,
		Skills:      team.SkillNames(),
		CreatedAt:   team.CreatedAt,
	}
}

type CommentItem struct {
	ID        uint          `json:"id"`
	Author    string        `json:"author"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	Replies   []CommentItem `json:"replies,omitempty"`
}

func newCommentItem(c *models.TeamComment) CommentItem {
	item := CommentItem{
		ID:        c.ID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
	if c.User != nil {
		item.Author = c.User.Nickname
	}
	return item
}

type TeamRecommendation struct {
	ID        uint                `json:"id"`
	Name      string              `json:"name"`
	Category  models.TeamCategory `json:"category"`
	ViewCount int                 `json:"view_count"`
}

type TeamDetail struct {
	ID             uint                 `json:"id"`
	Name           string               `json:"name"`
	Category       models.TeamCategory  `json:"category"`
	Description    string               `json:"description"`
	Status         models.TeamStatus    `json:"status"`
	ViewCount      int                  `json:"view_count"`
	Skills         []models.SkillName   `json:"skills"`
	LeaderNickname string               `json:"leader_nickname"`
	Comments       []CommentItem        `json:"comments"`
	Recommended    []TeamRecommendation `json:"recommended"`
	CreatedAt      time.Time            `json:"created_at"`
}

type MyPage struct {
	Nickname  string         `json:"nickname"`
	UserImage string         `json:"user_image"`
	Teams     []TeamListItem `json:"teams"`
}
