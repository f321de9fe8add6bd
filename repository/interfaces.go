// Package repository defines the persistence gateway consumed by the
// service layer. Implementations report a missing row as a nil result, not
// an error; only transport/storage faults come back as errors, wrapped in
// models.ErrStorage.
package repository

import (
	"context"

	"withme/models"
)

// Sort directions for team listings, by creation time.
const (
	SortCreatedDesc = 0
	SortCreatedAsc  = 1
)

type TeamRepository interface {
	// FindByID loads a team with its skill associations.
	FindByID(ctx context.Context, id uint) (*models.Team, error)
	// FindAllByStatus returns every team in the given status ordered by
	// creation time.
	FindAllByStatus(ctx context.Context, status models.TeamStatus, sort int) ([]models.Team, error)
	// FindByStatusAndSkills returns teams in the given status whose skill
	// associations intersect the requested set. An empty result for a
	// non-empty set is a valid answer, never a fallback to the full list.
	FindByStatusAndSkills(ctx context.Context, status models.TeamStatus, skills []models.SkillName, sort int) ([]models.Team, error)
	// FindTopByViewCount returns up to limit teams in the given status with
	// the highest view counts.
	FindTopByViewCount(ctx context.Context, status models.TeamStatus, limit int) ([]models.Team, error)
	// FindByUserID returns the teams a user belongs to.
	FindByUserID(ctx context.Context, userID uint) ([]models.Team, error)
	CountByName(ctx context.Context, name string) (int64, error)
	// Create persists the team together with its skill and membership
	// associations as one atomic unit.
	Create(ctx context.Context, team *models.Team) error
	Save(ctx context.Context, team *models.Team) error
	// IncrementViewCount bumps the counter by one in a single statement so
	// concurrent detail views cannot lose updates.
	IncrementViewCount(ctx context.Context, id uint) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByNickname(ctx context.Context, nickname string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateImage(ctx context.Context, id uint, image string) error
}

type TeamUserRepository interface {
	// FindLeader returns the LEADER membership of a team with its user.
	FindLeader(ctx context.Context, teamID uint) (*models.TeamUser, error)
	IsMember(ctx context.Context, teamID, userID uint) (bool, error)
}

type TeamCommentRepository interface {
	FindByTeamAndID(ctx context.Context, teamID, id uint) (*models.TeamComment, error)
	// FindTopLevelByTeam returns parentless comments ordered by id
	// descending, with their authors.
	FindTopLevelByTeam(ctx context.Context, teamID uint) ([]models.TeamComment, error)
	FindRepliesByTeamAndParent(ctx context.Context, teamID, parentID uint) ([]models.TeamComment, error)
	Create(ctx context.Context, comment *models.TeamComment) error
}

type TeamLikeRepository interface {
	FindByTeamAndUser(ctx context.Context, teamID, userID uint) (*models.TeamLike, error)
	Create(ctx context.Context, like *models.TeamLike) error
	Delete(ctx context.Context, id uint) error
}

type TeamNoticeRepository interface {
	Create(ctx context.Context, notice *models.TeamNotice) error
}
