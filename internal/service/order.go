package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"manufacturer-api/internal/dto"
	"manufacturer-api/internal/model"
	"manufacturer-api/internal/repository"
)

type OrderService interface {
	Get(ctx context.Context, id primitive.ObjectID) (*model.Order, error)
	ListByEmail(ctx context.Context, email string) ([]*model.Order, error)
	Create(ctx context.Context, order *model.Order) (*dto.InsertResult, error)
	DeleteByEmail(ctx context.Context, email string) (*dto.DeleteResult, error)
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
	}
}

func (s *orderServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	return s.orderRepo.FindByID(ctx, id)
}

func (s *orderServiceImpl) ListByEmail(ctx context.Context, email string) ([]*model.Order, error) {
	return s.orderRepo.FindByEmail(ctx, email)
}

func (s *orderServiceImpl) Create(ctx context.Context, order *model.Order) (*dto.InsertResult, error) {
	// New orders always start unpaid; the paid flag only flips through the
	// payment confirmation flow.
	order.Paid = false
	order.TransactionID = ""
	return s.orderRepo.Insert(ctx, order)
}

func (s *orderServiceImpl) DeleteByEmail(ctx context.Context, email string) (*dto.DeleteResult, error) {
	return s.orderRepo.DeleteByEmail(ctx, email)
}
