// models/team_like.go
package models

import "time"

// TeamLike marks that a user liked a team; presence of the row is the whole
// state. The composite unique index closes the concurrent-toggle race at
// the storage boundary.
type TeamLike struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	TeamID uint `json:"team_id" gorm:"not null;uniqueIndex:idx_team_likes_team_user"`
	UserID uint `json:"user_id" gorm:"not null;uniqueIndex:idx_team_likes_team_user"`

	CreatedAt time.Time `json:"created_at"`
}

func (TeamLike) TableName() string {
	return "team_likes"
}
