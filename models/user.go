// models/user.go
package models

import (
	"time"
)

// JoinRootDirect is recorded for users who signed up with email/password.
// OAuth logins store the provider id ("google", "naver") instead.
const JoinRootDirect = "withme"

const RoleUser = "ROLE_USER"

type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Email    *string `gorm:"uniqueIndex;size:100" json:"email,omitempty"`
	Password string  `gorm:"not null" json:"-"`
	Nickname string  `gorm:"uniqueIndex;not null;size:30" json:"nickname"`

	// UserImage is the avatar reference; empty until the user (or an OAuth
	// provider) supplies one.
	UserImage string `json:"user_image"`
	Role      string `gorm:"not null;default:'ROLE_USER'" json:"role"`
	JoinRoot  string `gorm:"not null" json:"join_root"`

	// OAuthSubject holds the provider-side subject key for OAuth users.
	OAuthSubject string `gorm:"column:oauth_subject" json:"-"`

	Memberships []TeamUser `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
