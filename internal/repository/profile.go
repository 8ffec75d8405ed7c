package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"manufacturer-api/internal/dto"
	"manufacturer-api/internal/model"
)

type ProfileRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Profile, error)
	Insert(ctx context.Context, profile *model.Profile) (*dto.InsertResult, error)
	UpsertByEmail(ctx context.Context, profile *model.Profile) (*dto.UpdateResult, error)
}

type profileRepoImpl struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) ProfileRepository {
	return &profileRepoImpl{
		coll: db.Collection("profiles"),
	}
}

func (r *profileRepoImpl) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	var profile model.Profile
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&profile)
	if err != nil {
		return nil, mapFindErr(err)
	}

	return &profile, nil
}

func (r *profileRepoImpl) Insert(ctx context.Context, profile *model.Profile) (*dto.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, profile)
	if err != nil {
		return nil, err
	}

	return &dto.InsertResult{InsertedID: objectIDHex(res.InsertedID)}, nil
}

// UpsertByEmail targets the caller's own record by email, so repeated saves
// update one profile instead of accumulating copies.
func (r *profileRepoImpl) UpsertByEmail(ctx context.Context, profile *model.Profile) (*dto.UpdateResult, error) {
	set := bson.M{"email": profile.Email}
	if profile.Education != "" {
		set["education"] = profile.Education
	}
	if profile.Location != "" {
		set["location"] = profile.Location
	}
	if profile.PhoneNumber != "" {
		set["phoneNumber"] = profile.PhoneNumber
	}
	if profile.ProfileLink != "" {
		set["profileLink"] = profile.ProfileLink
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": profile.Email},
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
