package entities

import "time"

// Testimonial is a customer review shown on the landing page.
//
// Storage model (DynamoDB):
//   - PK: id
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TrustedCompany is a partner whose logo appears in the trust bar.
//
// Storage model (DynamoDB):
//   - PK: id
//
// LogoPath is the object key inside the company-logos bucket; it is kept so
// the blob can be removed together with the row.
type TrustedCompany struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logo_url"`
	LogoPath  string    `json:"logo_path"`
	CreatedAt time.Time `json:"created_at"`
}

// SiteSetting is a key/value entry for editable site copy (promo banner,
// discount text, contact overrides). Upsert semantics by key.
//
// Storage model (DynamoDB):
//   - PK: key
type SiteSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
