package database

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tripwise/tripwise/pkg/util"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoInstance struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var MongoGlobalInstance *MongoInstance

const defaultMongoConnectionString = "mongodb://localhost:27017/"
const defaultMongoDatabase = "tripwise"

// Connect sets up the shared MongoDB instance used for the search log.
// The database is optional unless required is set; without it the
// gateway still serves requests but records nothing.
func Connect(required bool) error {
	env := util.GetEnvironmentVariables()

	if env["TRIPWISE_MONGODB_CONNECTION"] == "" && !required {
		log.Info().Msg("Skipping MongoDB setup")
		return nil
	}

	connectionString := defaultMongoConnectionString
	dbName := defaultMongoDatabase

	if env["TRIPWISE_MONGODB_CONNECTION"] != "" {
		connectionString = env["TRIPWISE_MONGODB_CONNECTION"]
	}

	if env["TRIPWISE_MONGODB_DATABASE"] != "" {
		dbName = env["TRIPWISE_MONGODB_DATABASE"]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
	if err != nil {
		return err
	}

	MongoGlobalInstance = &MongoInstance{
		Client:   client,
		Database: client.Database(dbName),
	}

	err = client.Ping(context.Background(), nil)
	if err != nil {
		return err
	}

	createIndexes()

	log.Info().Msgf("MongoDB client setup for %s", dbName)

	return nil
}

func Connected() bool {
	return MongoGlobalInstance != nil
}

func GetCollection(collectionName string) *mongo.Collection {
	return MongoGlobalInstance.Database.Collection(collectionName)
}
