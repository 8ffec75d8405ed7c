package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"manufacturer-api/internal/dto"
	"manufacturer-api/internal/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error)
	FindByEmail(ctx context.Context, email string) ([]*model.Order, error)
	Insert(ctx context.Context, order *model.Order) (*dto.InsertResult, error)
	MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) (*dto.UpdateResult, error)
	DeleteByEmail(ctx context.Context, email string) (*dto.DeleteResult, error)
}

type orderRepoImpl struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &orderRepoImpl{
		coll: db.Collection("orders"),
	}
}

func (r *orderRepoImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	var order model.Order
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		return nil, mapFindErr(err)
	}

	return &order, nil
}

func (r *orderRepoImpl) FindByEmail(ctx context.Context, email string) ([]*model.Order, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}

	orders := []*model.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) Insert(ctx context.Context, order *model.Order) (*dto.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}

	return &dto.InsertResult{InsertedID: objectIDHex(res.InsertedID)}, nil
}

// MarkPaid flips the paid flag and records the provider transaction id. No
// other order fields are touched.
func (r *orderRepoImpl) MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) (*dto.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"paid":          true,
			"transactionId": transactionID,
		}},
	)
	if err != nil {
		return nil, err
	}

	return &dto.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (r *orderRepoImpl) DeleteByEmail(ctx context.Context, email string) (*dto.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}

	return &dto.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
