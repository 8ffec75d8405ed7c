package service

import (
	"context"

	"manufacturer-api/internal/dto"
	"manufacturer-api/internal/model"
	"manufacturer-api/internal/repository"
)

type ProfileService interface {
	Get(ctx context.Context, email string) (*model.Profile, error)
	Create(ctx context.Context, profile *model.Profile) (*dto.InsertResult, error)
	Upsert(ctx context.Context, profile *model.Profile) (*dto.UpdateResult, error)
}

type profileServiceImpl struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileServiceImpl{
		profileRepo: profileRepo,
	}
}

func (s *profileServiceImpl) Get(ctx context.Context, email string) (*model.Profile, error) {
	return s.profileRepo.FindByEmail(ctx, email)
}

func (s *profileServiceImpl) Create(ctx context.Context, profile *model.Profile) (*dto.InsertResult, error) {
	return s.profileRepo.Insert(ctx, profile)
}

func (s *profileServiceImpl) Upsert(ctx context.Context, profile *model.Profile) (*dto.UpdateResult, error) {
	return s.profileRepo.UpsertByEmail(ctx, profile)
}
