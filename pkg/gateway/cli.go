package gateway

import (
	"github.com/tripwise/tripwise/pkg/database"
	"github.com/tripwise/tripwise/pkg/util"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "gateway",
		Usage: "Provides the route recommendation aggregation API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run gateway api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":5000",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(false); err != nil {
						return err
					}

					geocoder := NewGeocoder()
					if path := util.GetEnvironmentDefault("TRIPWISE_GATEWAY_CITIES_PATH", ""); path != "" {
						if err := geocoder.LoadCSV(path); err != nil {
							return err
						}
					}

					server := Server{
						Geocoder:  geocoder,
						Instances: GetRegisteredInstances(),

						LocationClient: NewLocationClient(util.GetEnvironmentDefault("TRIPWISE_LOCATION_SERVICE_URL", "http://127.0.0.1:5001")),
						RoutingClient:  NewRoutingClient(),
					}

					return server.SetupServer(c.String("listen"))
				},
			},
		},
	}
}
