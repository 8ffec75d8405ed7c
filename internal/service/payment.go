package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"manufacturer-api/internal/client"
	"manufacturer-api/internal/dto"
	"manufacturer-api/internal/model"
	"manufacturer-api/internal/repository"
)

type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
	ConfirmOrderPayment(ctx context.Context, orderID primitive.ObjectID, req *dto.ConfirmPaymentRequest) (*dto.UpdateResult, error)
}

type paymentServiceImpl struct {
	stripeClient client.StripeClient
	paymentRepo  repository.PaymentRepository
	orderRepo    repository.OrderRepository
}

func NewPaymentService(
	stripeClient client.StripeClient,
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
) PaymentService {
	return &paymentServiceImpl{
		stripeClient: stripeClient,
		paymentRepo:  paymentRepo,
		orderRepo:    orderRepo,
	}
}

// CreateIntent converts the decimal dollar price to integer cents and opens a
// card payment intent, returning the client secret the buyer completes the
// charge with out of band.
func (s *paymentServiceImpl) CreateIntent(ctx context.Context, price float64) (string, error) {
	cents := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	intent, err := s.stripeClient.CreatePaymentIntent(ctx, cents)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}

// ConfirmOrderPayment records the Payment document first and then marks the
// order paid. The two writes are not atomic: a failure after the first step
// leaves an orphan Payment, never an order marked paid without its Payment.
func (s *paymentServiceImpl) ConfirmOrderPayment(ctx context.Context, orderID primitive.ObjectID, req *dto.ConfirmPaymentRequest) (*dto.UpdateResult, error) {
	_, err := s.paymentRepo.Insert(ctx, &model.Payment{
		OrderID:       orderID.Hex(),
		Email:         req.Email,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		return nil, fmt.Errorf("insert payment record: %w", err)
	}

	result, err := s.orderRepo.MarkPaid(ctx, orderID, req.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("mark order %s paid: %w", orderID.Hex(), err)
	}

	return result, nil
}
