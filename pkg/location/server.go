package location

import (
	"errors"
	"fmt"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tripwise/tripwise/pkg/http_server"
)

type Server struct {
	Client *IPStackClient
	Cache  *Cache
}

func (s *Server) SetupServer(listen string) error {
	return s.newApp().Listen(listen)
}

func (s *Server) newApp() *fiber.App {
	webApp := fiber.New()
	webApp.Use(http_server.NewLogger())

	webApp.Get("/location", s.getLocation)

	return webApp
}

func (s *Server) getLocation(c *fiber.Ctx) error {
	if s.Client == nil || s.Client.AccessKey == "" {
		log.Warn().Msg("IPStack API key not configured")
		return c.JSON(DefaultRecord("Location API key not configured. Returning default location."))
	}

	// "check" resolves the requester's own address on the provider side
	ipAddress := c.Query("ip", "check")

	if s.Cache != nil {
		if record := s.Cache.Get(c.Context(), ipAddress); record != nil {
			return c.JSON(record)
		}
	}

	record, err := s.Client.Lookup(c.Context(), ipAddress)

	if err != nil {
		var providerError ProviderError
		var netError net.Error

		switch {
		case errors.As(err, &providerError):
			log.Warn().Str("info", providerError.Info).Msg("IPStack API error")
			return c.JSON(DefaultRecord(fmt.Sprintf("Could not fetch location from IPStack (%s). Returning default location.", providerError.Info)))
		case errors.As(err, &netError) && netError.Timeout():
			log.Error().Err(err).Msg("Request to IPStack timed out")
			c.SendStatus(fiber.StatusGatewayTimeout)
			return c.JSON(DefaultRecord("Location service request timed out. Returning default location."))
		default:
			log.Error().Err(err).Msg("Network error calling IPStack")
			c.SendStatus(fiber.StatusServiceUnavailable)
			return c.JSON(DefaultRecord(fmt.Sprintf("Network error contacting location service (%s). Returning default location.", err)))
		}
	}

	if s.Cache != nil {
		s.Cache.Set(c.Context(), ipAddress, record)
	}

	return c.JSON(record)
}
