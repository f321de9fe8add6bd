package services

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"withme/models"
	"withme/repository"
)

// memStore is an in-memory stand-in for the persistence gateway. Thin
// adapter types below expose it through the repository interfaces. Absent
// rows are reported as nil results, matching the repository contract.
type memStore struct {
	teams    map[uint]*models.Team
	users    map[uint]*models.User
	members  []*models.TeamUser
	comments map[uint]*models.TeamComment
	likes    map[uint]*models.TeamLike
	notices  []*models.TeamNotice

	nextID uint
	clock  time.Time
}

func newMemStore() *memStore {
	return &memStore{
		teams:    map[uint]*models.Team{},
		users:    map[uint]*models.User{},
		comments: map[uint]*models.TeamComment{},
		likes:    map[uint]*models.TeamLike{},
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestServices(m *memStore) (*TeamService, *UserService) {
	log := zap.NewNop().Sugar()
	team := NewTeamService(log, teamMem{m}, userMem{m}, teamUserMem{m}, commentMem{m}, likeMem{m}, noticeMem{m})
	user := NewUserService(log, userMem{m}, teamMem{m})
	return team, user
}

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

// tick returns a strictly increasing creation timestamp.
func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Minute)
	return m.clock
}

func (m *memStore) addUser(nickname string) *models.User {
	email := nickname + "@example.com"
	u := &models.User{
		ID:       m.id(),
		Email:    &email,
		Nickname: nickname,
		Role:     models.RoleUser,
		JoinRoot: models.JoinRootDirect,
	}
	m.users[u.ID] = u
	return u
}

func (m *memStore) addTeam(name string, status models.TeamStatus, views int, skills ...models.SkillName) *models.Team {
	t := &models.Team{
		ID:        m.id(),
		Name:      name,
		Category:  models.CategoryProject,
		Status:    status,
		ViewCount: views,
		CreatedAt: m.tick(),
	}
	for _, s := range skills {
		t.Skills = append(t.Skills, models.TeamSkill{ID: m.id(), TeamID: t.ID, Skill: s})
	}
	m.teams[t.ID] = t
	return t
}

func (m *memStore) addLeader(team *models.Team, user *models.User) {
	m.members = append(m.members, &models.TeamUser{
		ID: m.id(), TeamID: team.ID, UserID: user.ID,
		User: user, MemberType: models.MemberTypeLeader,
	})
}

func sortTeams(teams []models.Team, direction int) {
	sort.Slice(teams, func(i, j int) bool {
		if direction == repository.SortCreatedAsc {
			return teams[i].CreatedAt.Before(teams[j].CreatedAt)
		}
		return teams[i].CreatedAt.After(teams[j].CreatedAt)
	})
}

// teamMem implements repository.TeamRepository.
type teamMem struct{ *memStore }

func (m teamMem) FindByID(_ context.Context, id uint) (*models.Team, error) {
	t, ok := m.teams[id]
	if !ok {
		return nil, nil
	}
	// Detached copy, like a row scanned from the database.
	cp := *t
	return &cp, nil
}

func (m teamMem) FindAllByStatus(_ context.Context, status models.TeamStatus, direction int) ([]models.Team, error) {
	var out []models.Team
	for _, t := range m.teams {
		if t.Status == status {
			out = append(out, *t)
		}
	}
	sortTeams(out, direction)
	return out, nil
}

func (m teamMem) FindByStatusAndSkills(_ context.Context, status models.TeamStatus, skills []models.SkillName, direction int) ([]models.Team, error) {
	requested := map[models.SkillName]bool{}
	for _, s := range skills {
		requested[s] = true
	}
	var out []models.Team
	for _, t := range m.teams {
		if t.Status != status {
			continue
		}
		for _, ts := range t.Skills {
			if requested[ts.Skill] {
				out = append(out, *t)
				break
			}
		}
	}
	sortTeams(out, direction)
	return out, nil
}

func (m teamMem) FindTopByViewCount(_ context.Context, status models.TeamStatus, limit int) ([]models.Team, error) {
	var out []models.Team
	for _, t := range m.teams {
		if t.Status == status {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ViewCount > out[j].ViewCount })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m teamMem) FindByUserID(_ context.Context, userID uint) ([]models.Team, error) {
	var out []models.Team
	for _, mem := range m.members {
		if mem.UserID == userID {
			if t, ok := m.teams[mem.TeamID]; ok {
				out = append(out, *t)
			}
		}
	}
	sortTeams(out, repository.SortCreatedDesc)
	return out, nil
}

func (m teamMem) CountByName(_ context.Context, name string) (int64, error) {
	var count int64
	for _, t := range m.teams {
		if t.Name == name {
			count++
		}
	}
	return count, nil
}

func (m teamMem) Create(_ context.Context, team *models.Team) error {
	team.ID = m.id()
	team.CreatedAt = m.tick()
	for i := range team.Skills {
		team.Skills[i].ID = m.id()
		team.Skills[i].TeamID = team.ID
	}
	for i := range team.Members {
		team.Members[i].ID = m.id()
		team.Members[i].TeamID = team.ID
		team.Members[i].User = m.users[team.Members[i].UserID]
		m.members = append(m.members, &team.Members[i])
	}
	m.teams[team.ID] = team
	return nil
}

func (m teamMem) Save(_ context.Context, team *models.Team) error {
	m.teams[team.ID] = team
	return nil
}

func (m teamMem) IncrementViewCount(_ context.Context, id uint) error {
	if t, ok := m.teams[id]; ok {
		t.ViewCount++
	}
	return nil
}

// userMem implements repository.UserRepository.
type userMem struct{ *memStore }

func (m userMem) FindByID(_ context.Context, id uint) (*models.User, error) {
	return m.users[id], nil
}

func (m userMem) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m userMem) FindByNickname(_ context.Context, nickname string) (*models.User, error) {
	for _, u := range m.users {
		if u.Nickname == nickname {
			return u, nil
		}
	}
	return nil, nil
}

func (m userMem) Create(_ context.Context, user *models.User) error {
	user.ID = m.id()
	user.CreatedAt = m.tick()
	m.users[user.ID] = user
	return nil
}

func (m userMem) UpdateImage(_ context.Context, id uint, image string) error {
	if u, ok := m.users[id]; ok {
		u.UserImage = image
	}
	return nil
}

// teamUserMem implements repository.TeamUserRepository.
type teamUserMem struct{ *memStore }

func (m teamUserMem) FindLeader(_ context.Context, teamID uint) (*models.TeamUser, error) {
	for _, mem := range m.members {
		if mem.TeamID == teamID && mem.MemberType == models.MemberTypeLeader {
			return mem, nil
		}
	}
	return nil, nil
}

func (m teamUserMem) IsMember(_ context.Context, teamID, userID uint) (bool, error) {
	for _, mem := range m.members {
		if mem.TeamID == teamID && mem.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

// commentMem implements repository.TeamCommentRepository.
type commentMem struct{ *memStore }

func (m commentMem) FindByTeamAndID(_ context.Context, teamID, id uint) (*models.TeamComment, error) {
	c, ok := m.comments[id]
	if !ok || c.TeamID != teamID {
		return nil, nil
	}
	return c, nil
}

func (m commentMem) FindTopLevelByTeam(_ context.Context, teamID uint) ([]models.TeamComment, error) {
	var out []models.TeamComment
	for _, c := range m.comments {
		if c.TeamID == teamID && c.ParentID == nil {
			cc := *c
			cc.User = m.users[c.UserID]
			out = append(out, cc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m commentMem) FindRepliesByTeamAndParent(_ context.Context, teamID, parentID uint) ([]models.TeamComment, error) {
	var out []models.TeamComment
	for _, c := range m.comments {
		if c.TeamID == teamID && c.ParentID != nil && *c.ParentID == parentID {
			cc := *c
			cc.User = m.users[c.UserID]
			out = append(out, cc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m commentMem) Create(_ context.Context, comment *models.TeamComment) error {
	comment.ID = m.id()
	comment.CreatedAt = m.tick()
	m.comments[comment.ID] = comment
	return nil
}

// likeMem implements repository.TeamLikeRepository.
type likeMem struct{ *memStore }

func (m likeMem) FindByTeamAndUser(_ context.Context, teamID, userID uint) (*models.TeamLike, error) {
	for _, l := range m.likes {
		if l.TeamID == teamID && l.UserID == userID {
			return l, nil
		}
	}
	return nil, nil
}

func (m likeMem) Create(_ context.Context, like *models.TeamLike) error {
	like.ID = m.id()
	m.likes[like.ID] = like
	return nil
}

func (m likeMem) Delete(_ context.Context, id uint) error {
	delete(m.likes, id)
	return nil
}

// noticeMem implements repository.TeamNoticeRepository.
type noticeMem struct{ *memStore }

func (m noticeMem) Create(_ context.Context, notice *models.TeamNotice) error {
	notice.ID = m.id()
	m.notices = append(m.notices, notice)
	return nil
}

var (
	_ repository.TeamRepository        = teamMem{}
	_ repository.UserRepository        = userMem{}
	_ repository.TeamUserRepository    = teamUserMem{}
	_ repository.TeamCommentRepository = commentMem{}
	_ repository.TeamLikeRepository    = likeMem{}
	_ repository.TeamNoticeRepository  = noticeMem{}
)
