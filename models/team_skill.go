// models/team_skill.go
package models

import "time"

type SkillName string

const (
	SkillJava       SkillName = "JAVA"
	SkillSpring     SkillName = "SPRING"
	SkillKotlin     SkillName = "KOTLIN"
	SkillGo         SkillName = "GO"
	SkillPython     SkillName = "PYTHON"
	SkillDjango     SkillName = "DJANGO"
	SkillJavascript SkillName = "JAVASCRIPT"
	SkillTypescript SkillName = "TYPESCRIPT"
	SkillReact      SkillName = "REACT"
	SkillVue        SkillName = "VUE"
	SkillNode       SkillName = "NODE"
	SkillSwift      SkillName = "SWIFT"
	SkillFlutter    SkillName = "FLUTTER"
)

var skillNames = map[SkillName]bool{
	SkillJava: true, SkillSpring: true, SkillKotlin: true, SkillGo: true,
	SkillPython: true, SkillDjango: true, SkillJavascript: true,
	SkillTypescript: true, SkillReact: true, SkillVue: true,
	SkillNode: true, SkillSwift: true, SkillFlutter: true,
}

// ParseSkillName validates a requested skill tag against the enumerated set.
func ParseSkillName(s string) (SkillName, bool) {
	name := SkillName(s)
	return name, skillNames[name]
}

// TeamSkill tags a team with one skill. Rows exist only as search
// predicates; they are created and cascade-deleted with their team.
type TeamSkill struct {
	ID     uint      `json:"id" gorm:"primaryKey"`
	TeamID uint      `json:"team_id" gorm:"not null;index"`
	Skill  SkillName `json:"skill" gorm:"not null;size:30;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TeamSkill) TableName() string {
	return "team_skills"
}
