package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"manufacturer-api/internal/dto"
	"manufacturer-api/internal/model"
	"manufacturer-api/internal/repository"
)

type PartService interface {
	List(ctx context.Context) ([]*model.Part, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.Part, error)
	Create(ctx context.Context, part *model.Part) (*dto.InsertResult, error)
	UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int32) (*dto.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*dto.DeleteResult, error)
}

type partServiceImpl struct {
	partRepo repository.PartRepository
}

func NewPartService(partRepo repository.PartRepository) PartService {
	return &partServiceImpl{
		partRepo: partRepo,
	}
}

func (s *partServiceImpl) List(ctx context.Context) ([]*model.Part, error) {
	return s.partRepo.FindAll(ctx)
}

func (s *partServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.Part, error) {
	return s.partRepo.FindByID(ctx, id)
}

func (s *partServiceImpl) Create(ctx context.Context, part *model.Part) (*dto.InsertResult, error) {
	return s.partRepo.Insert(ctx, part)
}

func (s *partServiceImpl) UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int32) (*dto.UpdateResult, error) {
	return s.partRepo.UpdateQuantity(ctx, id, quantity)
}

func (s *partServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) (*dto.DeleteResult, error) {
	return s.partRepo.Delete(ctx, id)
}
