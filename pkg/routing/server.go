package routing

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tripwise/tripwise/pkg/http_server"
	"github.com/tripwise/tripwise/pkg/tdf"
)

func SetupServer(listen string, generator *Generator) error {
	return newApp(generator).Listen(listen)
}

func newApp(generator *Generator) *fiber.App {
	webApp := fiber.New()
	webApp.Use(http_server.NewLogger())

	webApp.Get("/recommendations", getRecommendations(generator))
	webApp.Get("/health", getHealth(generator))

	return webApp
}

func getRecommendations(generator *Generator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		originLat := c.Query("origin_lat")
		originLon := c.Query("origin_lon")
		destLat := c.Query("dest_lat")
		destLon := c.Query("dest_lon")

		if originLat == "" || originLon == "" || destLat == "" || destLon == "" {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Missing origin or destination coordinates",
			})
		}

		origin, originErr := parseCoordinates(originLat, originLon)
		destination, destErr := parseCoordinates(destLat, destLon)

		if originErr != nil || destErr != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Invalid coordinate format",
			})
		}

		preference := tdf.Preference(c.Query("preference", "fastest"))

		recommendations := generator.Generate(origin, destination, preference)

		log.Debug().
			Str("source", generator.CloudSource).
			Str("preference", string(preference)).
			Int("count", len(recommendations)).
			Msg("Generated recommendations")

		return c.JSON(fiber.Map{
			"recommendations": recommendations,
		})
	}
}

func getHealth(generator *Generator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"source": generator.CloudSource,
		})
	}
}

func parseCoordinates(latitude string, longitude string) (tdf.Coordinates, error) {
	lat, err := strconv.ParseFloat(latitude, 64)
	if err != nil {
		return tdf.Coordinates{}, err
	}

	lon, err := strconv.ParseFloat(longitude, 64)
	if err != nil {
		return tdf.Coordinates{}, err
	}

	return tdf.Coordinates{Latitude: lat, Longitude: lon}, nil
}
