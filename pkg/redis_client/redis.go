package redis_client

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/tripwise/tripwise/pkg/util"
)

var Client *redis.Client

const defaultDatabase = 0

// Connect sets up the shared redis client. Redis is optional; when no
// address is configured the client stays nil and callers skip caching.
func Connect() error {
	env := util.GetEnvironmentVariables()

	address := env["TRIPWISE_REDIS_ADDRESS"]
	if address == "" {
		log.Info().Msg("Skipping Redis setup")
		return nil
	}

	password := env["TRIPWISE_REDIS_PASSWORD"]
	database := defaultDatabase

	if env["TRIPWISE_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["TRIPWISE_REDIS_DATABASE"]); err == nil {
			database = n
		} else {
			return err
		}
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	statusCmd := Client.Ping(context.Background())
	if err := statusCmd.Err(); err != nil {
		return err
	}

	log.Info().Msgf("Redis client setup for %s", address)

	return nil
}

func Connected() bool {
	return Client != nil
}
