package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/brickfolio/property-portal/internal/modules/model"
	"github.com/brickfolio/property-portal/internal/modules/repo"
	"github.com/brickfolio/property-portal/internal/pkg/security"
	"gorm.io/gorm"
)

// Authorize is the pure role check every protected operation goes through:
// nil principal means unauthenticated, a role outside the allowed set means
// forbidden.
func Authorize(principal *model.User, allowed ...model.Role) error {
	if principal == nil {
		return ErrForbidden
	}
	for _, role := range allowed {
		if principal.Role == role {
			return nil
		}
	}
	return ErrForbidden
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	CreateUser(ctx context.Context, actor *model.User, in CreateUserInput) (*model.User, error)
}

type authService struct {
	users repo.UserRepo
	codec *security.TokenCodec
}

func NewAuthService(users repo.UserRepo, codec *security.TokenCodec) AuthService {
	return &authService{users: users, codec: codec}
}

// Login verifies the credentials and issues a bearer token whose subject is
// the user's email. Unknown email and wrong password are indistinguishable
// to the caller and leave no side effects.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !security.CheckPassword(password, user.HashedPassword) {
		return "", ErrInvalidCredentials
	}
	return s.codec.Issue(user.Email)
}

type CreateUserInput struct {
	Email    string
	Phone    *string
	Role     model.Role
	Password string
}

// CreateUser provisions an account. Policy: while the users table is empty
// the call is open so the first admin can be seeded; afterwards only an
// authenticated admin may create accounts.
func (s *authService) CreateUser(ctx context.Context, actor *model.User, in CreateUserInput) (*model.User, error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting users: %w", err)
	}
	if total > 0 {
		if err := Authorize(actor, model.RoleAdmin); err != nil {
			return nil, err
		}
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:          in.Email,
		Phone:          in.Phone,
		Role:           in.Role,
		HashedPassword: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}
