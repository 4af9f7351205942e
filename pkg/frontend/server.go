package frontend

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/tripwise/tripwise/pkg/http_server"
	"github.com/tripwise/tripwise/pkg/tdf"
)

type Server struct {
	Client RecommendationFetcher
}

func (s *Server) SetupServer(listen string) error {
	return s.newApp().Listen(listen)
}

func (s *Server) newApp() *fiber.App {
	webApp := fiber.New()
	webApp.Use(http_server.NewLogger())

	webApp.Get("/", s.getIndex)
	webApp.Get("/search", s.getSearch)

	return webApp
}

func (s *Server) getIndex(c *fiber.Ctx) error {
	preferences := NewCookieStore(c)

	data := PageData{
		Preference: string(tdf.PreferenceFastest),
	}

	// Only a previously stored preference overrides the default.
	// Anything unrecognised in the cookie falls back to fastest
	if stored, found := preferences.Load(); found {
		normalised, _ := tdf.ParsePreference(stored)
		data.Preference = string(normalised)
	}

	return renderPage(c, data)
}

func (s *Server) getSearch(c *fiber.Ctx) error {
	destination := c.Query("destination")
	preference := c.Query("preference")

	preferences := NewCookieStore(c)
	view := &PageView{}

	controller := FormController{
		View:        view,
		Client:      s.Client,
		Preferences: preferences,
	}
	controller.Submit(c.Context(), destination, preference)

	view.Data.Destination = destination

	selected := preference
	if stored, found := preferences.Load(); found {
		selected = stored
	}

	normalised, _ := tdf.ParsePreference(selected)
	view.Data.Preference = string(normalised)

	return renderPage(c, view.Data)
}

func renderPage(c *fiber.Ctx, data PageData) error {
	var page bytes.Buffer
	if err := pageTemplate.Execute(&page, data); err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)

	return c.Send(page.Bytes())
}
