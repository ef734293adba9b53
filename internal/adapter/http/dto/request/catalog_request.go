package request

import "parceiros_internet/internal/domain/entities"

// PlanRequest is the admin payload for creating or updating a residential
// plan. The id is never taken from the body; creates generate one and
// updates take it from the path.
type PlanRequest struct {
	Name          string   `json:"name" binding:"required"`
	Speed         int      `json:"speed" binding:"required"`
	Price         float64  `json:"price" binding:"required"`
	OriginalPrice float64  `json:"original_price"`
	Features      []string `json:"features"`
	Recommended   bool     `json:"recommended"`
	Tag           string   `json:"tag"`
}

func (r PlanRequest) ToEntity() entities.Plan {
	return entities.Plan{
		Name:          r.Name,
		Speed:         r.Speed,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Features:      r.Features,
		Recommended:   r.Recommended,
		Tag:           r.Tag,
	}
}

// BusinessPlanRequest is the admin payload for business plans.
type BusinessPlanRequest struct {
	Name     string   `json:"name" binding:"required"`
	Speed    int      `json:"speed" binding:"required"`
	Price    float64  `json:"price" binding:"required"`
	Features []string `json:"features"`
	Badge    string   `json:"badge"`
}

func (r BusinessPlanRequest) ToEntity() entities.BusinessPlan {
	return entities.BusinessPlan{
		Name:     r.Name,
		Speed:    r.Speed,
		Price:    r.Price,
		Features: r.Features,
		Badge:    r.Badge,
	}
}
