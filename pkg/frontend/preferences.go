package frontend

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// PreferenceCookieName is the fixed key the travel preference survives
// under between visits.
const PreferenceCookieName = "travelPreference"

// Store persists a single preference string across page loads.
type Store interface {
	Save(value string)
	Load() (string, bool)
}

// CookieStore keeps the preference in a browser cookie scoped to one
// request/response cycle.
type CookieStore struct {
	ctx *fiber.Ctx

	saved *string
}

func NewCookieStore(ctx *fiber.Ctx) *CookieStore {
	return &CookieStore{ctx: ctx}
}

func (s *CookieStore) Save(value string) {
	s.ctx.Cookie(&fiber.Cookie{
		Name:     PreferenceCookieName,
		Value:    value,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	// The response cookie isn't visible through the request, so shadow
	// it for loads within the same cycle
	s.saved = &value
}

func (s *CookieStore) Load() (string, bool) {
	if s.saved != nil {
		return *s.saved, true
	}

	value := s.ctx.Cookies(PreferenceCookieName)
	if value == "" {
		return "", false
	}

	return value, true
}

// MemoryStore is a Store for tests.
type MemoryStore struct {
	value *string
}

func (s *MemoryStore) Save(value string) {
	s.value = &value
}

func (s *MemoryStore) Load() (string, bool) {
	if s.value == nil {
		return "", false
	}

	return *s.value, true
}
