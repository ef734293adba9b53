package config

import (
	"fmt"
	"os"

	"parceiros_internet/internal/domain/quiz"
)

// CityID is the closed set of cities the provider covers. Neighborhood lists
// are keyed by CityID, never by free-form city names, so a mistyped name is a
// load-time error instead of a silent empty lookup.
type CityID string

const (
	CityBalnearioCamboriu CityID = "balneario-camboriu"
	CityCamboriu          CityID = "camboriu"
)

type City struct {
	ID            CityID   `json:"id"`
	Name          string   `json:"name"`
	Neighborhoods []string `json:"neighborhoods"`
}

type Company struct {
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
}

type Contact struct {
	Phone           string `json:"phone"`
	WhatsApp        string `json:"whatsapp"`
	WhatsAppDisplay string `json:"whatsapp_display"`
	Email           string `json:"email"`
	EmailPedidos    string `json:"email_pedidos"`
}

type Promo struct {
	Active       bool   `json:"active"`
	BannerText   string `json:"banner_text"`
	BannerCta    string `json:"banner_cta"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Discount     string `json:"discount"`
	DiscountText string `json:"discount_text"`
	EndDate      string `json:"end_date"`
}

// Site is the immutable site configuration injected at startup. Build it with
// Load (or literal values in tests); nothing mutates it afterwards.
type Site struct {
	Company Company         `json:"company"`
	Contact Contact         `json:"contact"`
	Promo   Promo           `json:"promo"`
	Cities  []City          `json:"cities"`
	Quiz    []quiz.Question `json:"quiz"`
}

// CityByName resolves a display name ("Camboriú") to its City entry.
func (s Site) CityByName(name string) (City, bool) {
	for _, c := range s.Cities {
		if c.Name == name {
			return c, true
		}
	}
	return City{}, false
}

// CityNames returns the display names in configured order; the first entry is
// the form default.
func (s Site) CityNames() []string {
	names := make([]string, len(s.Cities))
	for i, c := range s.Cities {
		names[i] = c.Name
	}
	return names
}

// Validate rejects configurations that would produce silent lookup failures
// at request time.
func (s Site) Validate() error {
	if s.Contact.WhatsApp == "" {
		return fmt.Errorf("config: contact whatsapp number is required")
	}
	if len(s.Cities) == 0 {
		return fmt.Errorf("config: at least one coverage city is required")
	}
	seen := make(map[CityID]bool, len(s.Cities))
	for _, c := range s.Cities {
		if c.ID == "" || c.Name == "" {
			return fmt.Errorf("config: city with empty id or name")
		}
		if seen[c.ID] {
			return fmt.Errorf("config: duplicate city id %q", c.ID)
		}
		seen[c.ID] = true
		if len(c.Neighborhoods) == 0 {
			return fmt.Errorf("config: city %q has no neighborhoods", c.ID)
		}
	}
	if len(s.Quiz) == 0 {
		return fmt.Errorf("config: quiz has no questions")
	}
	for _, q := range s.Quiz {
		if q.ID == "" || len(q.Options) == 0 {
			return fmt.Errorf("config: quiz question %q is incomplete", q.ID)
		}
	}
	return nil
}

// Load builds the site configuration from the built-in defaults plus env
// overrides, and validates it.
//
// Supported env vars:
//   - CONTACT_WHATSAPP (digits, international format)
//   - CONTACT_PHONE
//   - CONTACT_EMAIL
func Load() (Site, error) {
	s := Defaults()
	if v := os.Getenv("CONTACT_WHATSAPP"); v != "" {
		s.Contact.WhatsApp = v
	}
	if v := os.Getenv("CONTACT_PHONE"); v != "" {
		s.Contact.Phone = v
	}
	if v := os.Getenv("CONTACT_EMAIL"); v != "" {
		s.Contact.Email = v
	}
	if err := s.Validate(); err != nil {
		return Site{}, err
	}
	return s, nil
}
