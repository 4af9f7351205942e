package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createSearchIndexes()
}

func createSearchIndexes() {
	searchesCollection := GetCollection("searches")
	searchesIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "destination", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "preference", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "creationdatetime", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(90 * 24 * 3600), // Expire after 90 days
		},
	}

	opts := options.CreateIndexes()
	_, err := searchesCollection.Indexes().CreateMany(context.Background(), searchesIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
