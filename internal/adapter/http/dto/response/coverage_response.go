package response

import (
	"parceiros_internet/internal/infrastructure/config"
	"parceiros_internet/internal/usecase"
)

type CoverageResponse struct {
	Covered      bool   `json:"covered"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
}

func FromCoverage(r usecase.CoverageResult) CoverageResponse {
	return CoverageResponse{
		Covered:      r.Covered,
		Neighborhood: r.Neighborhood,
		City:         r.City,
	}
}

type CityResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Neighborhoods []string `json:"neighborhoods"`
}

func FromCities(cities []config.City) []CityResponse {
	out := make([]CityResponse, 0, len(cities))
	for _, c := range cities {
		out = append(out, CityResponse{
			ID:            string(c.ID),
			Name:          c.Name,
			Neighborhoods: c.Neighborhoods,
		})
	}
	return out
}
