package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"manufacturer-api/internal/dto"
	"manufacturer-api/internal/model"
)

// Reviews are append-only: they are created once and never updated or removed.
type ReviewRepository interface {
	FindAll(ctx context.Context) ([]*model.Review, error)
	Insert(ctx context.Context, review *model.Review) (*dto.InsertResult, error)
}

type reviewRepoImpl struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &reviewRepoImpl{
		coll: db.Collection("reviews"),
	}
}

func (r *reviewRepoImpl) FindAll(ctx context.Context) ([]*model.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	reviews := []*model.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *reviewRepoImpl) Insert(ctx context.Context, review *model.Review) (*dto.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return nil, err
	}

	return &dto.InsertResult{InsertedID: objectIDHex(res.InsertedID)}, nil
}
