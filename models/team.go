// models/team.go
package models

import "time"

type TeamCategory string

const (
	CategoryProject TeamCategory = "PROJECT"
	CategoryStudy   TeamCategory = "STUDY"
)

type TeamStatus string

const (
	StatusDisplayed TeamStatus = "DISPLAYED"
	StatusHidden    TeamStatus = "HIDDEN"
)

type Team struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"uniqueIndex;not null;size:100"`
	Category    TeamCategory `json:"category" gorm:"not null;size:20"`
	Description string       `json:"description" gorm:"type:text"`
	Status      TeamStatus   `json:"status" gorm:"not null;default:'DISPLAYED';index"`
	ViewCount   int          `json:"view_count" gorm:"not null;default:0"`

	Skills  []TeamSkill `json:"skills,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Members []TeamUser  `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Team) TableName() string {
	return "teams"
}

// SkillNames flattens the skill associations for response assembly.
func (t *Team) SkillNames() []SkillName {
	names := make([]SkillName, 0, len(t.Skills))
	for _, ts := range t.Skills {
		names = append(names, ts.Skill)
	}
	return names
}
