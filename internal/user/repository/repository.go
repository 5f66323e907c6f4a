package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/technotes/backend/internal/common/constants"
	"github.com/technotes/backend/internal/user/domain"
)

type Repository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindByID(ctx context.Context, id domain.ID) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.ID, error)
	Save(ctx context.Context, user domain.User) error
	Delete(ctx context.Context, id domain.ID) (domain.User, error)
}

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password,omitempty"`
	Roles    []string           `bson:"roles"`
	Active   bool               `bson:"active"`
}

func (d userDocument) toDomain() domain.User {
	return domain.User{
		ID:           domain.ID(d.ID.Hex()),
		Username:     d.Username,
		PasswordHash: d.Password,
		Roles:        d.Roles,
		Active:       d.Active,
	}
}

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: database.Collection(constants.UsersCollection)}
}

// FindAll projects the password hash out of the result set; it never leaves
// the store for read-oriented calls.
func (r *MongoRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	cur, err := r.collection.Find(
		ctx,
		bson.M{},
		options.Find().SetProjection(bson.M{"password": 0}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	defer cur.Close(ctx)

	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	users := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, nil
}

func (r *MongoRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("failed to find user by username: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return domain.User{}, ErrUserNotFound
	}

	var doc userDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("failed to find user by id: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoRepository) Create(ctx context.Context, user domain.User) (domain.ID, error) {
	res, err := r.collection.InsertOne(ctx, userDocument{
		Username: user.Username,
		Password: user.PasswordHash,
		Roles:    user.Roles,
		Active:   user.Active,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrUsernameAlreadyExists
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return domain.ID(oid.Hex()), nil
}

// Save persists all fields in one write.
func (r *MongoRepository) Save(ctx context.Context, user domain.User) error {
	oid, err := primitive.ObjectIDFromHex(string(user.ID))
	if err != nil {
		return ErrUserNotFound
	}

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, userDocument{
		ID:       oid,
		Username: user.Username,
		Password: user.PasswordHash,
		Roles:    user.Roles,
		Active:   user.Active,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUsernameAlreadyExists
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes the user and returns the deleted document so callers can
// report its username and id.
func (r *MongoRepository) Delete(ctx context.Context, id domain.ID) (domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return domain.User{}, ErrUserNotFound
	}

	var doc userDocument
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("failed to delete user: %w", err)
	}
	return doc.toDomain(), nil
}

var ErrUserNotFound = mongo.ErrNoDocuments

var ErrUsernameAlreadyExists = errors.New("username already exists")
