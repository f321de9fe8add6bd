// models/team_comment.go
package models

import "time"

// TeamComment belongs to a team and a user. ParentID is set on replies;
// nesting is limited to two levels, so a comment that has a parent can
// never itself be a parent.
type TeamComment struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	TeamID  uint   `json:"team_id" gorm:"not null;index"`
	UserID  uint   `json:"user_id" gorm:"not null;index"`
	User    *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Content string `json:"content" gorm:"type:text;not null"`

	ParentID *uint         `json:"parent_id,omitempty" gorm:"index"`
	Parent   *TeamComment  `json:"-" gorm:"foreignKey:ParentID"`
	Children []TeamComment `json:"children,omitempty" gorm:"foreignKey:ParentID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TeamComment) TableName() string {
	return "team_comments"
}

// IsReply reports whether the comment already sits at the second level.
func (c *TeamComment) IsReply() bool {
	return c.ParentID != nil
}
