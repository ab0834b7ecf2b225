package service

import (
	"context"
	"errors"
	"fmt"

	"helpdesk/internal/common"
	"helpdesk/internal/common/security"
	"helpdesk/internal/domain/model"
	"helpdesk/internal/domain/repository"
)

type UserService struct {
	userRepo repository.UserRepository
	banRepo  repository.BanRepository
}

func NewUserService(userRepo repository.UserRepository, banRepo repository.BanRepository) *UserService {
	return &UserService{userRepo: userRepo, banRepo: banRepo}
}

type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Username string `json:"username"`
	Password string `json:"password" validate:"required"`
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id int) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *UserService) Signup(ctx context.Context, req SignupRequest) (*model.User, error) {
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}

	banned, err := s.banRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check ban list: %w", err)
	}
	if banned {
		return nil, fmt.Errorf("email is banned: %w", common.ErrForbidden)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.NewUser(req.Username, req.Email, hashedPassword)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials against the stored hash. The username field is
// optional and participates in the lookup only when the email misses.
func (s *UserService) Login(ctx context.Context, req LoginRequest) (*model.User, error) {
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil && errors.Is(err, common.ErrNotFound) {
		user, err = s.userRepo.FindByUsername(ctx, req.Username)
	}
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, fmt.Errorf("password and user do not match: %w", common.ErrUnauthorized)
	}
	return user, nil
}
