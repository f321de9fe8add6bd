// repository/team.go - GORM-backed team store
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"withme/models"
)

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func orderByCreated(sort int) string {
	if sort == SortCreatedAsc {
		return "created_at ASC"
	}
	return "created_at DESC"
}

func wrapStorage(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", models.ErrStorage, op, err)
}

func (r *teamRepository) FindByID(ctx context.Context, id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).
		Preload("Skills").
		First(&team, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapStorage("find team", err)
	}
	return &team, nil
}

func (r *teamRepository) FindAllByStatus(ctx context.Context, status models.TeamStatus, sort int) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Preload("Skills").
		Order(orderByCreated(sort)).
		Find(&teams).Error
	if err != nil {
		return nil, wrapStorage("list teams", err)
	}
	return teams, nil
}

func (r *teamRepository) FindByStatusAndSkills(ctx context.Context, status models.TeamStatus, skills []models.SkillName, sort int) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).
		Distinct("teams.*").
		Joins("JOIN team_skills ON team_skills.team_id = teams.id").
		Where("teams.status = ? AND team_skills.skill IN ?", status, skills).
		Preload("Skills").
		Order("teams." + orderByCreated(sort)).
		Find(&teams).Error
	if err != nil {
		return nil, wrapStorage("search teams", err)
	}
	return teams, nil
}

func (r *teamRepository) FindTopByViewCount(ctx context.Context, status models.TeamStatus, limit int) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("view_count DESC").
		Limit(limit).
		Find(&teams).Error
	if err != nil {
		return nil, wrapStorage("top teams", err)
	}
	return teams, nil
}

func (r *teamRepository) FindByUserID(ctx context.Context, userID uint) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).
		Joins("JOIN team_users ON team_users.team_id = teams.id").
		Where("team_users.user_id = ?", userID).
		Preload("Skills").
		Order("teams.created_at DESC").
		Find(&teams).Error
	if err != nil {
		return nil, wrapStorage("user teams", err)
	}
	return teams, nil
}

func (r *teamRepository) CountByName(ctx context.Context, name string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Team{}).
		Where("name = ?", name).
		Count(&count).Error
	if err != nil {
		return 0, wrapStorage("count teams", err)
	}
	return count, nil
}

func (r *teamRepository) Create(ctx context.Context, team *models.Team) error {
	err := r.db.WithContext(ctx).Create(team).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// A concurrent caller raced past the in-process uniqueness check;
		// the unique index on teams.name is the authority.
		return models.ErrTeamNameTaken
	}
	if err != nil {
		return wrapStorage("create team", err)
	}
	return nil
}

func (r *teamRepository) Save(ctx context.Context, team *models.Team) error {
	err := r.db.WithContext(ctx).Save(team).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.ErrTeamNameTaken
	}
	if err != nil {
		return wrapStorage("save team", err)
	}
	return nil
}

func (r *teamRepository) IncrementViewCount(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Team{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1")).Error
	if err != nil {
		return wrapStorage("increment view count", err)
	}
	return nil
}
