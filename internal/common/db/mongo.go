package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/technotes/backend/internal/common/constants"
	"github.com/technotes/backend/internal/common/logger"
)

// Connect dials MongoDB with bounded retries and returns the named database.
// Startup fails hard if the store never becomes reachable, matching the rest
// of the bootstrap.
func Connect(log *logger.Logger, databaseURI, databaseName string) *mongo.Database {
	opts := options.Client().
		ApplyURI(databaseURI).
		SetConnectTimeout(constants.MongoConnectTimeout).
		SetAppName("technotes")

	for attempt := 1; attempt <= constants.MongoMaxAttempts; attempt++ {
		client, err := mongo.Connect(context.Background(), opts)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(context.Background(), constants.MongoConnectTimeout)
			err = client.Ping(pingCtx, nil)
			cancel()
			if err == nil {
				log.Infof("mongodb connection established: db=%s", databaseName)
				return client.Database(databaseName)
			}
			_ = client.Disconnect(context.Background())
		}

		log.Warnf("failed to connect to mongodb (attempt %d/%d): %v", attempt, constants.MongoMaxAttempts, err)

		if attempt == constants.MongoMaxAttempts {
			log.Fatalf("failed to connect to mongodb after %d attempts: %v", constants.MongoMaxAttempts, err)
			return nil
		}

		time.Sleep(constants.MongoRetryDelay)
	}

	log.Fatalf("failed to connect to mongodb after %d attempts", constants.MongoMaxAttempts)
	return nil
}

// EnsureIndexes creates the unique index on users.username. The pre-write
// duplicate check in the service keeps the reference behavior; the index
// closes the read-then-write race underneath it.
func EnsureIndexes(ctx context.Context, log *logger.Logger, database *mongo.Database) error {
	_, err := database.Collection(constants.UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	log.Infof("unique index ensured on %s.username", constants.UsersCollection)
	return nil
}
