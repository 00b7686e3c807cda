package application

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"authapi/internal/domain/entity"
	repo "authapi/internal/domain/repository"
	"authapi/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
)

const profileCacheTTL = 5 * time.Minute

// Service orchestrates the three auth operations. It holds no mutable
// state across requests; the JWT manager's secret is loaded once at
// startup and read-only after.
type Service struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewService(r repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger) *Service {
	return &Service{Repo: r, JWT: jwt, Redis: rdb, Logger: logger}
}

// Profile is the reduced user projection exposed over HTTP. The password
// hash never appears here.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func profileKey(userID string) string {
	return "user:profile:" + userID
}

// Register creates a user with a bcrypt-hashed password and returns the
// directory-assigned identifier. The database uniqueness constraint is
// authoritative: a pre-check loss still comes back as ErrUsernameTaken,
// and no row is written on any failure path.
func (s *Service) Register(ctx context.Context, username, password string) (string, error) {
	existing, err := s.Repo.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return "", err
	}
	if existing != nil {
		return "", ErrUsernameTaken
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return "", err
	}
	u := &entity.User{Username: username, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			return "", ErrUsernameTaken
		}
		return "", err
	}
	return u.ID, nil
}

// Login verifies the credentials and issues a bearer token. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", ErrInvalidCredentials
	}

	token, _, err := s.JWT.Generate(u.ID, u.Username)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		}
		return "", err
	}
	return token, nil
}

// GetProfile returns the {id, username} projection for the subject.
// Records never mutate in this scope, so a short read-through cache is
// safe; the service behaves identically with no Redis configured.
func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	if s.Redis != nil {
		var cached Profile
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, profileKey(userID), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	p := &Profile{ID: u.ID, Username: u.Username}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, profileKey(userID), p, profileCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("profile cache write failed")
		}
	}
	return p, nil
}
