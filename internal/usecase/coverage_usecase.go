package usecase

import (
	"errors"
	"strings"

	"parceiros_internet/internal/infrastructure/config"
)

var (
	ErrInvalidCEP  = errors.New("cep must have at least 8 digits")
	ErrUnknownCity = errors.New("unknown coverage city")
)

// CoverageResult is the outcome of the availability check. Neighborhood and
// City are only set when Covered is true.
type CoverageResult struct {
	Covered      bool   `json:"covered"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
}

// ICoverageUseCase answers "is there fiber at this CEP" and serves the
// coverage map used by the site.
type ICoverageUseCase interface {
	Check(cep string) (CoverageResult, error)
	Cities() []config.City
	Neighborhoods(cityName string) ([]string, error)
}

// CoverageUseCase classifies CEPs by fixed prefix. This is the provider's
// placeholder heuristic, not a geocoding lookup: prefixes 883 and 882 are the
// two covered cities and every covered check reports the Centro neighborhood.
type CoverageUseCase struct {
	site config.Site
}

var _ ICoverageUseCase = (*CoverageUseCase)(nil)

func NewCoverageUseCase(site config.Site) *CoverageUseCase {
	return &CoverageUseCase{site: site}
}

func (u *CoverageUseCase) Check(cep string) (CoverageResult, error) {
	digits := stripNonDigits(cep)
	if len(digits) < 8 {
		return CoverageResult{}, ErrInvalidCEP
	}

	if !strings.HasPrefix(digits, "883") && !strings.HasPrefix(digits, "882") {
		return CoverageResult{Covered: false}, nil
	}

	cityID := config.CityCamboriu
	if strings.HasPrefix(digits, "8833") {
		cityID = config.CityBalnearioCamboriu
	}
	for _, c := range u.site.Cities {
		if c.ID == cityID {
			return CoverageResult{Covered: true, Neighborhood: "Centro", City: c.Name}, nil
		}
	}
	// Config validation guarantees both cities exist; treat a miss as not
	// covered rather than inventing a name.
	return CoverageResult{Covered: false}, nil
}

func (u *CoverageUseCase) Cities() []config.City {
	return u.site.Cities
}

func (u *CoverageUseCase) Neighborhoods(cityName string) ([]string, error) {
	city, ok := u.site.CityByName(strings.TrimSpace(cityName))
	if !ok {
		return nil, ErrUnknownCity
	}
	return city.Neighborhoods, nil
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
