package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"lenscraft-server/internal/dto"
	"lenscraft-server/internal/model"
	"lenscraft-server/internal/repository"
)

type UserService interface {
	Register(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error)
	Get(ctx context.Context, email string) (*model.User, error)
	SetRole(ctx context.Context, userID string, role model.Role) error
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(
	userRepo repository.UserRepository,
) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

// Register returns the existing user for the email, or creates a student.
func (s *userServiceImpl) Register(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error) {
	user, err := s.userRepo.FirstOrCreate(ctx, &model.User{
		ID:    uuid.NewString(),
		Email: req.Email,
		Name:  req.Name,
		Photo: req.Photo,
		Role:  model.RoleStudent,
	})
	if err != nil {
		return nil, persistence("register user", err)
	}
	return user, nil
}

func (s *userServiceImpl) Get(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
	}
	if err != nil {
		return nil, persistence("load user", err)
	}
	return user, nil
}

func (s *userServiceImpl) SetRole(ctx context.Context, userID string, role model.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	err := s.userRepo.UpdateRole(ctx, userID, role)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	if err != nil {
		return persistence("update role", err)
	}
	return nil
}
