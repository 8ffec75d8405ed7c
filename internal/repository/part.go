package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"manufacturer-api/internal/dto"
	"manufacturer-api/internal/model"
)

type PartRepository interface {
	FindAll(ctx context.Context) ([]*model.Part, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Part, error)
	Insert(ctx context.Context, part *model.Part) (*dto.InsertResult, error)
	UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int32) (*dto.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*dto.DeleteResult, error)
}

type partRepoImpl struct {
	coll *mongo.Collection
}

func NewPartRepository(db *mongo.Database) PartRepository {
	return &partRepoImpl{
		coll: db.Collection("parts"),
	}
}

func (r *partRepoImpl) FindAll(ctx context.Context) ([]*model.Part, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	parts := []*model.Part{}
	if err := cursor.All(ctx, &parts); err != nil {
		return nil, err
	}

	return parts, nil
}

func (r *partRepoImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Part, error) {
	var part model.Part
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&part)
	if err != nil {
		return nil, mapFindErr(err)
	}

	return &part, nil
}

func (r *partRepoImpl) Insert(ctx context.Context, part *model.Part) (*dto.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, part)
	if err != nil {
		return nil, err
	}

	return &dto.InsertResult{InsertedID: objectIDHex(res.InsertedID)}, nil
}

func (r *partRepoImpl) UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int32) (*dto.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"quantity": quantity}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}

	return &dto.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    objectIDHex(res.UpsertedID),
	}, nil
}

func (r *partRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) (*dto.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}

	return &dto.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
