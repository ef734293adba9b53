package response

import (
	"time"

	"parceiros_internet/internal/domain/entities"
)

type TestimonialResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromTestimonial(t entities.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:        t.ID,
		Name:      t.Name,
		Location:  t.Location,
		Text:      t.Text,
		Rating:    t.Rating,
		AvatarURL: t.AvatarURL,
		CreatedAt: t.CreatedAt,
	}
}

func FromTestimonials(list []entities.Testimonial) []TestimonialResponse {
	out := make([]TestimonialResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromTestimonial(t))
	}
	return out
}

type TrustedCompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logo_url"`
	CreatedAt time.Time `json:"created_at"`
}

func FromTrustedCompany(c entities.TrustedCompany) TrustedCompanyResponse {
	return TrustedCompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		LogoURL:   c.LogoURL,
		CreatedAt: c.CreatedAt,
	}
}

func FromTrustedCompanies(list []entities.TrustedCompany) []TrustedCompanyResponse {
	out := make([]TrustedCompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromTrustedCompany(c))
	}
	return out
}

type SiteSettingResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromSiteSetting(s entities.SiteSetting) SiteSettingResponse {
	return SiteSettingResponse{Key: s.Key, Value: s.Value, UpdatedAt: s.UpdatedAt}
}

func FromSiteSettings(list []entities.SiteSetting) []SiteSettingResponse {
	out := make([]SiteSettingResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromSiteSetting(s))
	}
	return out
}
