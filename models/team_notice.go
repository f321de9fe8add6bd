// models/team_notice.go
package models

import "time"

// TeamNotice is an announcement posted to a team by one of its members.
type TeamNotice struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	TeamID  uint   `json:"team_id" gorm:"not null;index"`
	UserID  uint   `json:"user_id" gorm:"not null;index"`
	User    *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Title   string `json:"title" gorm:"not null;size:200"`
	Content string `json:"content" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TeamNotice) TableName() string {
	return "team_notices"
}
