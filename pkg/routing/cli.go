package routing

import (
	"time"

	"github.com/tripwise/tripwise/pkg/util"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "routing",
		Usage: "Provides the transport recommendation API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run routing api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":5002",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					cloudSource := util.GetEnvironmentDefault("TRIPWISE_CLOUD_PROVIDER", "GCP")

					generator := NewGenerator(cloudSource, time.Now().UnixNano())

					return SetupServer(c.String("listen"), generator)
				},
			},
		},
	}
}
