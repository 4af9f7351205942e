package location

import (
	"net/http"
	"os"
	"time"

	"github.com/tripwise/tripwise/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "location",
		Usage: "Provides the IP geolocation lookup API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run location api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":5001",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						return err
					}

					server := Server{
						Client: NewIPStackClient(os.Getenv("TRIPWISE_IPSTACK_API_KEY"), &http.Client{
							Timeout: 5 * time.Second,
						}),
					}

					if redis_client.Connected() {
						server.Cache = &Cache{}
						server.Cache.Setup()
					}

					return server.SetupServer(c.String("listen"))
				},
			},
		},
	}
}
