package response

import (
	"time"

	"parceiros_internet/internal/domain/entities"
)

type PlanResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Speed         int       `json:"speed"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"original_price"`
	Features      []string  `json:"features"`
	Recommended   bool      `json:"recommended"`
	Tag           string    `json:"tag,omitempty"`
	IdealFor      string    `json:"ideal_for"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromPlan(p entities.Plan) PlanResponse {
	return PlanResponse{
		ID:            p.ID,
		Name:          p.Name,
		Speed:         p.Speed,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Features:      p.Features,
		Recommended:   p.Recommended,
		Tag:           p.Tag,
		IdealFor:      p.IdealFor(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromPlans(list []entities.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPlan(p))
	}
	return out
}

type BusinessPlanResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Speed     int       `json:"speed"`
	Price     float64   `json:"price"`
	Features  []string  `json:"features"`
	Badge     string    `json:"badge,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromBusinessPlan(p entities.BusinessPlan) BusinessPlanResponse {
	return BusinessPlanResponse{
		ID:        p.ID,
		Name:      p.Name,
		Speed:     p.Speed,
		Price:     p.Price,
		Features:  p.Features,
		Badge:     p.Badge,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromBusinessPlans(list []entities.BusinessPlan) []BusinessPlanResponse {
	out := make([]BusinessPlanResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromBusinessPlan(p))
	}
	return out
}
