package application

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/linskybing/docflow/internal/api/middleware"
	"github.com/linskybing/docflow/internal/config"
	"github.com/linskybing/docflow/internal/domain/document"
	"github.com/linskybing/docflow/internal/domain/user"
	"github.com/linskybing/docflow/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

// IdentityResolver resolves an email to a role-assignment identity inside
// the caller's transaction.
type IdentityResolver interface {
	ResolveOrCreate(repos *repository.Repos, email, name string) (document.Identity, error)
}

type UserService struct {
	Repos *repository.Repos
	// AutoProvision creates placeholder accounts for unknown emails instead
	// of leaving the assignment pending.
	AutoProvision bool
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos:         repos,
		AutoProvision: config.AutoProvisionUsers,
	}
}

// RegisterUser creates the account, or activates a placeholder created by
// an earlier assignment, and claims pending role rows for the email.
func (s *UserService) RegisterUser(ctx context.Context, input user.RegisterInput) (user.User, error) {
	email := user.NormalizeEmail(input.Email)
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	var out user.User
	err = s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		usr, err := tx.User.GetUserByEmail(email)
		switch {
		case err == nil && !usr.Placeholder:
			return ErrEmailTaken
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		usr.Email = email
		usr.Name = input.Name
		usr.Position = input.Position
		usr.Password = string(hashed)
		usr.Placeholder = false
		if err := tx.User.SaveUser(&usr); err != nil {
			return err
		}

		claimed, err := tx.Role.ClaimPendingRoles(email, usr.ID)
		if err != nil {
			return err
		}
		if claimed > 0 {
			zap.L().Info("claimed pending role assignments", zap.String("email", email), zap.Int64("count", claimed))
		}
		out = usr
		return nil
	})
	return out, err
}

func (s *UserService) LoginUser(email, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByEmail(user.NormalizeEmail(email))
	if err != nil || usr.Placeholder {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr, config.TokenTTL)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) ListUsers() ([]user.User, error) {
	return s.Repos.User.GetAllUsers()
}

func (s *UserService) FindUserByID(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}
	return usr, nil
}

// ResolveOrCreate returns the account for email. Unknown emails become a
// placeholder account, or a pending identity when auto provisioning is off.
func (s *UserService) ResolveOrCreate(repos *repository.Repos, email, name string) (document.Identity, error) {
	email = user.NormalizeEmail(email)
	usr, err := repos.User.GetUserByEmail(email)
	if err == nil {
		return document.Resolved(usr), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return document.Identity{}, err
	}

	if !s.AutoProvision {
		return document.Pending(email, name), nil
	}

	secret, err := randomSecret()
	if err != nil {
		return document.Identity{}, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return document.Identity{}, ErrPasswordHashFailure
	}
	usr = user.User{
		Email:       email,
		Name:        name,
		Password:    string(hashed),
		Placeholder: true,
	}
	if err := repos.User.SaveUser(&usr); err != nil {
		return document.Identity{}, err
	}
	zap.L().Info("provisioned placeholder user", zap.String("email", email), zap.Uint("user_id", usr.ID))
	return document.Resolved(usr), nil
}

func randomSecret() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
