package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"manufacturer-api/internal/dto"
	"manufacturer-api/internal/model"
)

// Users are logically keyed by email; uniqueness is only enforced by always
// writing through Upsert.
type UserRepository interface {
	FindAll(ctx context.Context) ([]*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Upsert(ctx context.Context, email string, user *model.User) (*dto.UpdateResult, error)
	SetRole(ctx context.Context, email, role string) (*dto.UpdateResult, error)
}

type userRepoImpl struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepoImpl{
		coll: db.Collection("users"),
	}
}

func (r *userRepoImpl) FindAll(ctx context.Context) ([]*model.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	users := []*model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepoImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, mapFindErr(err)
	}

	return &user, nil
}

func (r *userRepoImpl) Upsert(ctx context.Context, email string, user *model.User) (*dto.UpdateResult, error) {
	set := bson.M{"email": email}
	if user.Name != "" {
		set["name"] = user.Name
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": set},
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

func (r *userRepoImpl) SetRole(ctx context.Context, email, role string) (*dto.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return nil, err
	}

	return &dto.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}
