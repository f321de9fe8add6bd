// services/user_service.go - registration, OAuth upsert and my-page
package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"withme/models"
	"withme/repository"
)

type UserService struct {
	log   *zap.SugaredLogger
	users repository.UserRepository
	teams repository.TeamRepository
}

func NewUserService(log *zap.SugaredLogger, users repository.UserRepository, teams repository.TeamRepository) *UserService {
	return &UserService{log: log, users: users, teams: teams}
}

type RegisterInput struct {
	Email    string
	Password string
	Nickname string
}

// Register creates a direct-signup user with a bcrypt password hash.
// Nickname and email must both be unused.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	existing, err := s.users.FindByNickname(ctx, in.Nickname)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrNicknameTaken
	}

	existing, err = s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	email := in.Email
	user := &models.User{
		Email:    &email,
		Password: string(hash),
		Nickname: in.Nickname,
		Role:     models.RoleUser,
		JoinRoot: models.JoinRootDirect,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Infow("user registered", "user_id", user.ID, "nickname", user.Nickname)
	return user, nil
}

// Authenticate verifies email/password credentials for login.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.ErrUnauthorized
	}
	return user, nil
}

// OAuthLogin upserts a user from a provider userinfo payload: a user
// already registered under the profile email gets a fresh avatar, a new
// user is created with a random password and the provider as join origin.
func (s *UserService) OAuthLogin(ctx context.Context, provider string, attributes map[string]any) (*models.User, error) {
	profile, err := ExtractOAuthProfile(provider, attributes)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, profile.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		if err := s.users.UpdateImage(ctx, user.ID, profile.Image); err != nil {
			return nil, err
		}
		user.UserImage = profile.Image
		return user, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	email := profile.Email
	user = &models.User{
		Email:        &email,
		Password:     string(hash),
		Nickname:     profile.Name,
		UserImage:    profile.Image,
		Role:         models.RoleUser,
		JoinRoot:     provider,
		OAuthSubject: profile.Subject,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Infow("oauth user created", "user_id", user.ID, "provider", provider)
	return user, nil
}

// MyPage aggregates the caller's profile with the teams they belong to.
func (s *UserService) MyPage(ctx context.Context, userID uint) (*MyPage, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.ErrUserNotFound
	}

	teams, err := s.teams.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	page := &MyPage{
		Nickname:  user.Nickname,
		UserImage: user.UserImage,
		Teams:     make([]TeamListItem, 0, len(teams)),
	}
	for i := range teams {
		page.Teams = append(page.Teams, newTeamListItem(&teams[i]))
	}
	return page, nil
}

// UpdateImage replaces the caller's avatar reference.
func (s *UserService) UpdateImage(ctx context.Context, userID uint, image string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return models.ErrUserNotFound
	}
	return s.users.UpdateImage(ctx, userID, image)
}
