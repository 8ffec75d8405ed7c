package service

import (
	"context"

	"manufacturer-api/internal/dto"
	"manufacturer-api/internal/model"
	"manufacturer-api/internal/repository"
)

type ReviewService interface {
	List(ctx context.Context) ([]*model.Review, error)
	Create(ctx context.Context, review *model.Review) (*dto.InsertResult, error)
}

type reviewServiceImpl struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewServiceImpl{
		reviewRepo: reviewRepo,
	}
}

func (s *reviewServiceImpl) List(ctx context.Context) ([]*model.Review, error) {
	return s.reviewRepo.FindAll(ctx)
}

func (s *reviewServiceImpl) Create(ctx context.Context, review *model.Review) (*dto.InsertResult, error) {
	return s.reviewRepo.Insert(ctx, review)
}
