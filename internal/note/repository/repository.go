package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/technotes/backend/internal/common/constants"
	userdomain "github.com/technotes/backend/internal/user/domain"
)

// Repository is deliberately read-only: notes are only consulted for the
// delete-time referential-integrity guard.
type Repository interface {
	ExistsByUserID(ctx context.Context, userID userdomain.ID) (bool, error)
}

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: database.Collection(constants.NotesCollection)}
}

func (r *MongoRepository) ExistsByUserID(ctx context.Context, userID userdomain.ID) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(string(userID))
	if err != nil {
		// An unresolvable id cannot be referenced by any note.
		return false, nil
	}

	err = r.collection.FindOne(ctx, bson.M{"user": oid}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up notes for user: %w", err)
	}
	return true, nil
}
