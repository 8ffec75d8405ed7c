package service

import (
	"context"
	"errors"
	"fmt"

	"manufacturer-api/internal/auth"
	"manufacturer-api/internal/dto"
	"manufacturer-api/internal/model"
	"manufacturer-api/internal/repository"
)

type UserService interface {
	List(ctx context.Context) ([]*model.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	Promote(ctx context.Context, email string) (*dto.UpdateResult, error)
	Upsert(ctx context.Context, email string, user *model.User) (*dto.UpsertUserResponse, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

func NewUserService(userRepo repository.UserRepository, tokens *auth.TokenManager) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *userServiceImpl) List(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *userServiceImpl) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return user.Role == auth.RoleAdmin, nil
}

func (s *userServiceImpl) Promote(ctx context.Context, email string) (*dto.UpdateResult, error) {
	return s.userRepo.SetRole(ctx, email, auth.RoleAdmin)
}

// Upsert doubles as login: it persists the user document and hands back a
// fresh bearer token for the same email on every call.
func (s *userServiceImpl) Upsert(ctx context.Context, email string, user *model.User) (*dto.UpsertUserResponse, error) {
	result, err := s.userRepo.Upsert(ctx, email, user)
	if err != nil {
		return nil, fmt.Errorf("upsert user %s: %w", email, err)
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		return nil, fmt.Errorf("issue token for %s: %w", email, err)
	}

	return &dto.UpsertUserResponse{
		Result: result,
		Token:  token,
	}, nil
}
