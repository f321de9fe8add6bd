// repository/engagement.go - memberships, comments, likes, notices
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"withme/models"
)

type teamUserRepository struct {
	db *gorm.DB
}

func NewTeamUserRepository(db *gorm.DB) TeamUserRepository {
	return &teamUserRepository{db: db}
}

func (r *teamUserRepository) FindLeader(ctx context.Context, teamID uint) (*models.TeamUser, error) {
	var member models.TeamUser
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND member_type = ?", teamID, models.MemberTypeLeader).
		Preload("User").
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapStorage("find leader", err)
	}
	return &member, nil
}

func (r *teamUserRepository) IsMember(ctx context.Context, teamID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.TeamUser{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error
	if err != nil {
		return false, wrapStorage("check membership", err)
	}
	return count > 0, nil
}

type teamCommentRepository struct {
	db *gorm.DB
}

func NewTeamCommentRepository(db *gorm.DB) TeamCommentRepository {
	return &teamCommentRepository{db: db}
}

func (r *teamCommentRepository) FindByTeamAndID(ctx context.Context, teamID, id uint) (*models.TeamComment, error) {
	var comment models.TeamComment
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND id = ?", teamID, id).
		First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapStorage("find comment", err)
	}
	return &comment, nil
}

func (r *teamCommentRepository) FindTopLevelByTeam(ctx context.Context, teamID uint) ([]models.TeamComment, error) {
	var comments []models.TeamComment
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND parent_id IS NULL", teamID).
		Preload("User").
		Order("id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, wrapStorage("list comments", err)
	}
	return comments, nil
}

func (r *teamCommentRepository) FindRepliesByTeamAndParent(ctx context.Context, teamID, parentID uint) ([]models.TeamComment, error) {
	var comments []models.TeamComment
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND parent_id = ?", teamID, parentID).
		Preload("User").
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, wrapStorage("list replies", err)
	}
	return comments, nil
}

func (r *teamCommentRepository) Create(ctx context.Context, comment *models.TeamComment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return wrapStorage("create comment", err)
	}
	return nil
}

type teamLikeRepository struct {
	db *gorm.DB
}

func NewTeamLikeRepository(db *gorm.DB) TeamLikeRepository {
	return &teamLikeRepository{db: db}
}

func (r *teamLikeRepository) FindByTeamAndUser(ctx context.Context, teamID, userID uint) (*models.TeamLike, error) {
	var like models.TeamLike
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapStorage("find like", err)
	}
	return &like, nil
}

func (r *teamLikeRepository) Create(ctx context.Context, like *models.TeamLike) error {
	err := r.db.WithContext(ctx).Create(like).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Concurrent toggle already inserted the pair; the end state is
		// "liked" either way.
		return nil
	}
	if err != nil {
		return wrapStorage("create like", err)
	}
	return nil
}

func (r *teamLikeRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.TeamLike{}, id).Error; err != nil {
		return wrapStorage("delete like", err)
	}
	return nil
}

type teamNoticeRepository struct {
	db *gorm.DB
}

func NewTeamNoticeRepository(db *gorm.DB) TeamNoticeRepository {
	return &teamNoticeRepository{db: db}
}

func (r *teamNoticeRepository) Create(ctx context.Context, notice *models.TeamNotice) error {
	if err := r.db.WithContext(ctx).Create(notice).Error; err != nil {
		return wrapStorage("create notice", err)
	}
	return nil
}
