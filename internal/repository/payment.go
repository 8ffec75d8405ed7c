package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"manufacturer-api/internal/dto"
	"manufacturer-api/internal/model"
)

// Payments are written once per confirmed charge and never updated.
type PaymentRepository interface {
	Insert(ctx context.Context, payment *model.Payment) (*dto.InsertResult, error)
}

type paymentRepoImpl struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) PaymentRepository {
	return &paymentRepoImpl{
		coll: db.Collection("payments"),
	}
}

func (r *paymentRepoImpl) Insert(ctx context.Context, payment *model.Payment) (*dto.InsertResult, error) {
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}

	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return nil, err
	}

	return &dto.InsertResult{InsertedID: objectIDHex(res.InsertedID)}, nil
}
