package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dom "userdir/internal/domain"
	"userdir/internal/repo"
	"userdir/internal/utils"

	"go.uber.org/zap"
)

const userIDPrefix = "user"

var (
	ErrValidation         = errors.New("required field missing")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("user not found")
)

// UserService handles signup, login and user lookups.
type UserService struct {
	repo repo.UserRepo
	log  *zap.Logger
	now  func() time.Time
}

// NewUserService returns a new UserService. A nil logger disables logging.
func NewUserService(r repo.UserRepo, log *zap.Logger) *UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserService{repo: r, log: log, now: time.Now}
}

// Signup creates a user. Passwords are stored as given.
func (s *UserService) Signup(ctx context.Context, name, email, password string) (dom.User, error) {
	if name == "" || email == "" || password == "" {
		return dom.User{}, ErrValidation
	}
	exists, err := s.repo.Exists(ctx, email)
	if err != nil {
		return dom.User{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		s.log.Info("signup rejected, email already registered", zap.String("email", email))
		return dom.User{}, ErrEmailTaken
	}

	u, err := s.repo.Create(ctx, dom.User{
		ID:        utils.NewID(userIDPrefix),
		Name:      name,
		Email:     email,
		Password:  password,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		// Lost a race against a concurrent signup for the same email.
		if errors.Is(err, repo.ErrConflict) {
			s.log.Info("signup rejected, email already registered", zap.String("email", email))
			return dom.User{}, ErrEmailTaken
		}
		return dom.User{}, fmt.Errorf("create user: %w", err)
	}
	s.log.Info("user created", zap.String("email", u.Email), zap.String("id", u.ID))
	return u, nil
}

// Login checks email and password. Unknown email and wrong password both
// yield ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (dom.User, error) {
	if email == "" || password == "" {
		return dom.User{}, ErrValidation
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			s.log.Warn("login failed, user not found", zap.String("email", email))
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, fmt.Errorf("get user: %w", err)
	}
	if u.Password != password {
		s.log.Warn("login failed, wrong password", zap.String("email", email))
		return dom.User{}, ErrInvalidCredentials
	}
	s.log.Info("login successful", zap.String("email", email))
	return u, nil
}

func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, ErrValidation
	}
	exists, err := s.repo.Exists(ctx, email)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	s.log.Debug("email checked", zap.String("email", email), zap.Bool("exists", exists))
	return exists, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// List returns the public view of every user.
func (s *UserService) List(ctx context.Context) ([]dom.PublicUser, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]dom.PublicUser, len(list))
	for i := range list {
		out[i] = list[i].Public()
	}
	return out, nil
}
