package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/tripwise/tripwise/pkg/database"
	"github.com/tripwise/tripwise/pkg/http_server"
	"github.com/tripwise/tripwise/pkg/tdf"
	"github.com/tripwise/tripwise/pkg/util"
)

type Server struct {
	Geocoder  *Geocoder
	Instances []RoutingInstance

	LocationClient *LocationClient
	RoutingClient  *RoutingClient
}

func (s *Server) SetupServer(listen string) error {
	return s.newApp().Listen(listen)
}

func (s *Server) newApp() *fiber.App {
	webApp := fiber.New()
	webApp.Use(http_server.NewLogger())

	group := webApp.Group("/api")

	group.Get("/version", getVersion)
	group.Get("/route", s.getRoute)
	group.Get("/stats", getStats)

	return webApp
}

func getVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": "v0.1",
	})
}

func getStats(c *fiber.Ctx) error {
	if !database.Connected() {
		c.SendStatus(fiber.StatusServiceUnavailable)
		return c.JSON(fiber.Map{
			"error": "Search log is not configured",
		})
	}

	stats, err := getSearchStats()
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(stats)
}

func (s *Server) getRoute(c *fiber.Ctx) error {
	destinationCity := c.Query("destination")
	// Passed through to the routing service verbatim; only the
	// frontend constrains the value
	preference := c.Query("preference", "fastest")
	testIP := c.Query("test_ip")

	if destinationCity == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Destination city parameter ('destination') is required",
		})
	}

	// Resolve the caller's origin, falling back to a default rather
	// than failing the whole request when the lookup is unavailable
	var origin *tdf.Origin
	var notes []string

	locationRecord, err := s.LocationClient.GetLocation(c.Context(), testIP)

	if err != nil {
		var netError net.Error
		if errors.As(err, &netError) && netError.Timeout() {
			log.Error().Err(err).Msg("Request to Location Service timed out")
			c.SendStatus(fiber.StatusGatewayTimeout)
			return c.JSON(fiber.Map{
				"error": "Failed to get origin location: Request timed out",
			})
		}

		log.Error().Err(err).Msg("Could not connect to Location Service")
		notes = append(notes, fmt.Sprintf("Could not contact Location Service (%s). Origin unknown.", err))
	} else {
		if locationRecord.Warning != "" {
			notes = append(notes, locationRecord.Warning)
		}

		if locationRecord.Latitude != nil && locationRecord.Longitude != nil {
			city := locationRecord.City
			if city == "" {
				city = "Unknown"
			}

			origin = &tdf.Origin{
				IPAddress:   locationRecord.IP,
				City:        city,
				RegionName:  locationRecord.RegionName,
				CountryName: locationRecord.CountryName,
				Latitude:    *locationRecord.Latitude,
				Longitude:   *locationRecord.Longitude,
			}
		}
	}

	if origin == nil {
		origin = &tdf.Origin{
			City:      "London (Default Origin)",
			Latitude:  51.5074,
			Longitude: -0.1278,
		}

		if len(notes) == 0 {
			notes = append(notes, "Origin location could not be determined; using default.")
		}
	}

	destinationCoords, found := s.Geocoder.Lookup(destinationCity)
	if !found {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": fmt.Sprintf("Could not find coordinates for destination city: %s", destinationCity),
		})
	}

	healthy := s.healthyInstances(c.Context())
	if len(healthy) == 0 {
		log.Error().Msg("No healthy routing instances available")
		c.SendStatus(fiber.StatusServiceUnavailable)
		return c.JSON(fiber.Map{
			"error": "Recommendation service is temporarily unavailable",
		})
	}

	instance := healthy[rand.Intn(len(healthy))]
	log.Debug().Str("instance", instance.Identifier).Msg("Selected healthy routing instance")

	recommendations, err := s.RoutingClient.GetRecommendations(c.Context(), instance, origin.Coordinates(), destinationCoords, preference)
	if err != nil {
		var netError net.Error
		if errors.As(err, &netError) && netError.Timeout() {
			log.Error().Err(err).Str("instance", instance.Identifier).Msg("Request to Routing Service timed out")
			c.SendStatus(fiber.StatusGatewayTimeout)
			return c.JSON(fiber.Map{
				"error": "Fetching recommendations timed out",
			})
		}

		log.Error().Err(err).Str("instance", instance.Identifier).Msg("Could not get recommendations")

		status := fiber.StatusServiceUnavailable
		details := "Unknown error communicating with recommendation service."

		var downstreamError DownstreamError
		if errors.As(err, &downstreamError) {
			status = downstreamError.Status
			details = extractErrorDetails(downstreamError.Body, details)
		}

		c.SendStatus(status)
		return c.JSON(fiber.Map{
			"error":   "Failed to get recommendations",
			"details": details,
		})
	}

	if recommendations == nil {
		recommendations = []tdf.Recommendation{}
	}
	if notes == nil {
		notes = []string{}
	}

	routeResponse := tdf.RouteResponse{
		Origin:               origin,
		DestinationRequested: destinationCity,
		DestinationCoords:    &destinationCoords,
		Preference:           preference,
		Notes:                notes,
		Recommendations:      recommendations,
	}

	go recordSearch(SearchRecord{
		Destination:         destinationCity,
		Preference:          preference,
		OriginCity:          origin.City,
		RecommendationCount: len(recommendations),
	})

	routeResponseReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, routeResponse)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sorry an internal server error occurred",
		})
	}

	return c.JSON(routeResponseReduced)
}

// extractErrorDetails pulls a human readable message out of a
// downstream error body, preferring a JSON error field over raw text.
func extractErrorDetails(body []byte, fallback string) string {
	if len(body) == 0 {
		return fallback
	}

	var errorBody struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errorBody); err == nil {
		if errorBody.Error != "" {
			return errorBody.Error
		}
		return fallback
	}

	return util.TrimString(string(body), 200)
}
