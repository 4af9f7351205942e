package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tripwise/tripwise/pkg/frontend"
	"github.com/tripwise/tripwise/pkg/gateway"
	"github.com/tripwise/tripwise/pkg/location"
	"github.com/tripwise/tripwise/pkg/routing"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("TRIPWISE_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("TRIPWISE_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "tripwise",
		Description: "Single binary of truth for Tripwise - runs all the services",

		Commands: []*cli.Command{
			gateway.RegisterCLI(),
			location.RegisterCLI(),
			routing.RegisterCLI(),
			frontend.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
