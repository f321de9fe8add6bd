// services/team_service.go - team search, creation and engagement logic
package services

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"withme/models"
	"withme/repository"
)

const recommendationSize = 5

type TeamService struct {
	log       *zap.SugaredLogger
	teams     repository.TeamRepository
	users     repository.UserRepository
	teamUsers repository.TeamUserRepository
	comments  repository.TeamCommentRepository
	likes     repository.TeamLikeRepository
	notices   repository.TeamNoticeRepository
}

func NewTeamService(
	log *zap.SugaredLogger,
	teams repository.TeamRepository,
	users repository.UserRepository,
	teamUsers repository.TeamUserRepository,
	comments repository.TeamCommentRepository,
	likes repository.TeamLikeRepository,
	notices repository.TeamNoticeRepository,
) *TeamService {
	return &TeamService{
		log:       log,
		teams:     teams,
		users:     users,
		teamUsers: teamUsers,
		comments:  comments,
		likes:     likes,
		notices:   notices,
	}
}

// SearchTeams lists DISPLAYED teams ordered by creation time. With a
// non-empty skill set only teams carrying at least one requested tag are
// returned; zero matches yield an empty list, never the unfiltered one.
func (s *TeamService) SearchTeams(ctx context.Context, sort int, skills []string) ([]TeamListItem, error) {
	var teams []models.Team
	var err error

	if len(skills) == 0 {
		teams, err = s.teams.FindAllByStatus(ctx, models.StatusDisplayed, sort)
	} else {
		var names []models.SkillName
		names, err = parseSkills(skills)
		if err != nil {
			return nil, err
		}
		teams, err = s.teams.FindByStatusAndSkills(ctx, models.StatusDisplayed, names, sort)
	}
	if err != nil {
		return nil, err
	}

	items := make([]TeamListItem, 0, len(teams))
	for i := range teams {
		items = append(items, newTeamListItem(&teams[i]))
	}
	return items, nil
}

type CreateTeamInput struct {
	Name        string
	Description string
	Category    models.TeamCategory
	Skills      []string
}

// CreateTeam persists a DISPLAYED team with one TeamSkill per requested tag
// and the caller as its single LEADER, in one atomic unit, and returns the
// new team's id.
func (s *TeamService) CreateTeam(ctx context.Context, userID uint, in CreateTeamInput) (uint, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, models.ErrUserNotFound
	}

	skills, err := parseSkills(in.Skills)
	if err != nil {
		return 0, err
	}

	count, err := s.teams.CountByName(ctx, in.Name)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, models.ErrTeamNameTaken
	}

	team := &models.Team{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Status:      models.StatusDisplayed,
	}
	for _, skill := range skills {
		team.Skills = append(team.Skills, models.TeamSkill{Skill: skill})
	}
	team.Members = []models.TeamUser{{
		UserID:     user.ID,
		MemberType: models.MemberTypeLeader,
	}}

	if err := s.teams.Create(ctx, team); err != nil {
		return 0, err
	}

	s.log.Infow("team created", "team_id", team.ID, "name", team.Name, "leader_id", user.ID)
	return team.ID, nil
}

// GetTeamDetail returns the team with its leader, nested comments and a
// recommendation set. Every call increments the stored view count by one
// before the response is assembled. A team without a LEADER membership is
// reported as not found rather than tolerated.
func (s *TeamService) GetTeamDetail(ctx context.Context, teamID uint) (*TeamDetail, error) {
	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, models.ErrTeamNotFound
	}

	leader, err := s.teamUsers.FindLeader(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if leader == nil {
		s.log.Errorw("team has no leader membership", "team_id", teamID)
		return nil, models.ErrLeaderNotFound
	}

	if err := s.teams.IncrementViewCount(ctx, teamID); err != nil {
		return nil, err
	}
	team.ViewCount++

	comments, err := s.assembleComments(ctx, teamID)
	if err != nil {
		return nil, err
	}

	recommended, err := s.Recommend(ctx)
	if err != nil {
		return nil, err
	}

	detail := &TeamDetail{
		ID:          team.ID,
		Name:        team.Name,
		Category:    team.Category,
		Description: team.Description,
		Status:      team.Status,
		ViewCount:   team.ViewCount,
		Skills:      team.SkillNames(),
		Comments:    comments,
		Recommended: recommended,
		CreatedAt:   team.CreatedAt,
	}
	if leader.User != nil {
		detail.LeaderNickname = leader.User.Nickname
	}
	return detail, nil
}

// assembleComments loads top-level comments (id descending) and attaches
// replies in a second pass keyed by team id + parent comment id.
func (s *TeamService) assembleComments(ctx context.Context, teamID uint) ([]CommentItem, error) {
	topLevel, err := s.comments.FindTopLevelByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	items := make([]CommentItem, 0, len(topLevel))
	for i := range topLevel {
		item := newCommentItem(&topLevel[i])
		replies, err := s.comments.FindRepliesByTeamAndParent(ctx, teamID, topLevel[i].ID)
		if err != nil {
			return nil, err
		}
		for j := range replies {
			item.Replies = append(item.Replies, newCommentItem(&replies[j]))
		}
		items = append(items, item)
	}
	return items, nil
}

// AddComment creates a comment on a team. parentID 0 means top-level; a
// non-zero parentID must name an existing top-level comment of the same
// team, since replies to replies are disallowed.
func (s *TeamService) AddComment(ctx context.Context, teamID, userID uint, content string, parentID uint) (uint, error) {
	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		return 0, err
	}
	if team == nil {
		return 0, models.ErrTeamNotFound
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, models.ErrUserNotFound
	}

	comment := &models.TeamComment{
		TeamID:  teamID,
		UserID:  userID,
		Content: content,
	}

	if parentID != 0 {
		parent, err := s.comments.FindByTeamAndID(ctx, teamID, parentID)
		if err != nil {
			return 0, err
		}
		if parent == nil {
			return 0, models.ErrCommentNotFound
		}
		if parent.IsReply() {
			return 0, models.ErrReplyDepth
		}
		comment.ParentID = &parent.ID
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return 0, err
	}
	return comment.ID, nil
}

// ToggleLike flips the like state for a team/user pair: an existing row is
// deleted, a missing one is inserted. Callers re-query to observe state.
func (s *TeamService) ToggleLike(ctx context.Context, teamID, userID uint) error {
	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		return err
	}
	if team == nil {
		return models.ErrTeamNotFound
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return models.ErrUserNotFound
	}

	like, err := s.likes.FindByTeamAndUser(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if like != nil {
		return s.likes.Delete(ctx, like.ID)
	}
	return s.likes.Create(ctx, &models.TeamLike{TeamID: teamID, UserID: userID})
}

// Recommend returns the five DISPLAYED teams with the highest view counts
// in a freshly randomized order.
func (s *TeamService) Recommend(ctx context.Context) ([]TeamRecommendation, error) {
	teams, err := s.teams.FindTopByViewCount(ctx, models.StatusDisplayed, recommendationSize)
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(teams), func(i, j int) {
		teams[i], teams[j] = teams[j], teams[i]
	})

	items := make([]TeamRecommendation, 0, len(teams))
	for i := range teams {
		items = append(items, TeamRecommendation{
			ID:        teams[i].ID,
			Name:      teams[i].Name,
			Category:  teams[i].Category,
			ViewCount: teams[i].ViewCount,
		})
	}
	return items, nil
}

// CreateNotice posts an announcement to a team. The caller must already be
// a member of that team.
func (s *TeamService) CreateNotice(ctx context.Context, teamID, userID uint, title, content string) (*models.TeamNotice, error) {
	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, models.ErrTeamNotFound
	}

	member, err := s.teamUsers.IsMember(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, models.ErrNotTeamMember
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.ErrUserNotFound
	}

	notice := &models.TeamNotice{
		TeamID:  teamID,
		UserID:  userID,
		Title:   title,
		Content: content,
	}
	if err := s.notices.Create(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

// UpdateTeamPost updates a team's name and description and returns its id.
func (s *TeamService) UpdateTeamPost(ctx context.Context, teamID uint, name, description string) (uint, error) {
	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		return 0, err
	}
	if team == nil {
		return 0, models.ErrTeamNotFound
	}

	team.Name = name
	team.Description = description
	if err := s.teams.Save(ctx, team); err != nil {
		return 0, err
	}
	return team.ID, nil
}

func parseSkills(skills []string) ([]models.SkillName, error) {
	names := make([]models.SkillName, 0, len(skills))
	for _, s := range skills {
		name, ok := models.ParseSkillName(s)
		if !ok {
			return nil, fmt.Errorf("%w: %s", models.ErrUnknownSkill, s)
		}
		names = append(names, name)
	}
	return names, nil
}
