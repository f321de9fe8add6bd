// database/migrate.go - Database Migration Runner
package database

import (
	"gorm.io/gorm"

	"withme/models"
)

// RunMigrations creates all tables and the indexes the services depend on.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamUser{},
		&models.TeamSkill{},
		&models.TeamComment{},
		&models.TeamLike{},
		&models.TeamNotice{},
	); err != nil {
		return err
	}

	return createIndexes(db)
}

func createIndexes(db *gorm.DB) error {
	// The unique indexes on teams.name, users.nickname/email and
	// team_likes(team_id, user_id) come from the model tags; what is left
	// here are the read-path indexes.
	stmts := []string{
		"CREATE INDEX IF NOT EXISTS idx_teams_status_created ON teams(status, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_teams_status_views ON teams(status, view_count DESC)",
		"CREATE INDEX IF NOT EXISTS idx_team_skills_skill ON team_skills(skill)",
		"CREATE INDEX IF NOT EXISTS idx_team_comments_team_parent ON team_comments(team_id, parent_id)",
		"CREATE INDEX IF NOT EXISTS idx_team_users_team_type ON team_users(team_id, member_type)",
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
