package frontend

import (
	"github.com/tripwise/tripwise/pkg/util"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "frontend",
		Usage: "Serves the search form web page",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run frontend web server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					server := Server{
						Client: NewClient(util.GetEnvironmentDefault("TRIPWISE_GATEWAY_URL", "http://127.0.0.1:5000")),
					}

					return server.SetupServer(c.String("listen"))
				},
			},
		},
	}
}
