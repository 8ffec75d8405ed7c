package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned by find-one lookups that match no document.
var ErrNotFound = errors.New("document not found")

func mapFindErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func objectIDHex(id interface{}) string {
	oid, ok := id.(primitive.ObjectID)
	if !ok {
		return ""
	}
	return oid.Hex()
}
