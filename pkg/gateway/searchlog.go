package gateway

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tripwise/tripwise/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
)

type SearchRecord struct {
	Destination string `bson:"destination"`
	Preference  string `bson:"preference"`
	OriginCity  string `bson:"origincity"`

	RecommendationCount int `bson:"recommendationcount"`

	CreationDateTime time.Time `bson:"creationdatetime"`
}

// recordSearch logs a served query to the searches collection. Best
// effort only; a missing or failing database never fails the request.
func recordSearch(record SearchRecord) {
	if !database.Connected() {
		return
	}

	record.CreationDateTime = time.Now()

	searchesCollection := database.GetCollection("searches")
	_, err := searchesCollection.InsertOne(context.Background(), record)
	if err != nil {
		log.Error().Err(err).Msg("Failed to record search")
	}
}

type searchStats struct {
	TotalSearches int64            `json:"total_searches"`
	ByPreference  map[string]int64 `json:"by_preference"`
}

func getSearchStats() (*searchStats, error) {
	searchesCollection := database.GetCollection("searches")

	total, err := searchesCollection.CountDocuments(context.Background(), bson.M{})
	if err != nil {
		return nil, err
	}

	stats := &searchStats{
		TotalSearches: total,
		ByPreference:  map[string]int64{},
	}

	for _, preference := range []string{"fastest", "cheapest", "greenest"} {
		count, err := searchesCollection.CountDocuments(context.Background(), bson.M{"preference": preference})
		if err != nil {
			return nil, err
		}

		stats.ByPreference[preference] = count
	}

	return stats, nil
}
