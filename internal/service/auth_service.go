package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KimLeno1/sky1/internal/models"
	"github.com/KimLeno1/sky1/internal/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found or expired")
)

const sessionTTL = 24 * time.Hour

type RegisterInput struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	PassportNumber string `json:"passportNumber"`
	Password       string `json:"password"`
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

type authService struct {
	users    repository.UserRepository
	sessions *redis.Client
}

func NewAuthService(users repository.UserRepository, sessions *redis.Client) AuthService {
	return &authService{users: users, sessions: sessions}
}

// Register creates the account and opens a session in one call, matching
// the sign-up flow where the new user lands already logged in.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, string, error) {
	_, err := s.users.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("lookup email: %w", err)
	}

	user := &models.User{
		ID:             "SN-" + strings.ToUpper(uuid.NewString()[:8]),
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		PassportNumber: input.PassportNumber,
		Password:       input.Password,
		MemberStatus:   models.MemberStandard,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if user.Password != password {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Del(ctx, sessionKey(token)).Err()
}

func (s *authService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.sessions.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		return nil, ErrSessionNotFound
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return user, nil
}

func (s *authService) openSession(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.sessions.Set(ctx, sessionKey(token), userID, sessionTTL).Err(); err != nil {
		return "", fmt.Errorf("open session: %w", err)
	}
	return token, nil
}

func sessionKey(token string) string { return "session:" + token }
