package entities

import "time"

// Plan is a residential fiber plan persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Pricing:
//   - Price is the monthly price charged today.
//   - OriginalPrice is a display-only struck-through reference and is
//     expected to be >= Price.
//
// At most one plan should carry Recommended per catalog; the catalog does not
// enforce it, the reader picks the first match.
type Plan struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Speed         int       `json:"speed"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"original_price"`
	Features      []string  `json:"features"`
	Recommended   bool      `json:"recommended"`
	Tag           string    `json:"tag,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IdealFor derives the "ideal para" marketing line from the plan speed.
// Four fixed speed bands, same copy the site has always shown.
func (p Plan) IdealFor() string {
	switch {
	case p.Speed <= 200:
		return "Ideal para 1-2 pessoas, navegação e redes sociais"
	case p.Speed <= 400:
		return "Ideal para famílias com streaming e smart home"
	case p.Speed <= 600:
		return "Ideal para gamers, home office e streaming 4K"
	default:
		return "Ideal para empresas em casa, streamers e tech lovers"
	}
}

// BusinessPlan is a business fiber plan. Managed independently from Plan:
// separate table, separate id space, no original price or recommendation.
//
// Storage model (DynamoDB):
//   - PK: id
type BusinessPlan struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Speed     int       `json:"speed"`
	Price     float64   `json:"price"`
	Features  []string  `json:"features"`
	Badge     string    `json:"badge,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
