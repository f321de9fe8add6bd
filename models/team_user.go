// models/team_user.go
package models

import "time"

type MemberType string

const (
	MemberTypeLeader MemberType = "LEADER"
	MemberTypeMember MemberType = "MEMBER"
)

// TeamUser links a user to a team. Every team is created with exactly one
// LEADER membership.
type TeamUser struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	TeamID     uint       `json:"team_id" gorm:"not null;index"`
	Team       *Team      `json:"-" gorm:"foreignKey:TeamID"`
	UserID     uint       `json:"user_id" gorm:"not null;index"`
	User       *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	MemberType MemberType `json:"member_type" gorm:"not null;default:'MEMBER'"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TeamUser) TableName() string {
	return "team_users"
}
