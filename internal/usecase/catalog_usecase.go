package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"parceiros_internet/internal/domain/entities"
	"parceiros_internet/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrInvalidPlanID    = errors.New("invalid plan id")
	ErrInvalidPlanField = errors.New("invalid plan field")
	ErrNoFeaturedPlan   = errors.New("catalog has no featured plan")
)

// ICatalogUseCase exposes the plan catalog.
//
// Public site reads List*/FeaturedPlan; everything else is reached only
// through the admin surface.
type ICatalogUseCase interface {
	ListPlans(ctx context.Context) ([]entities.Plan, error)
	CreatePlan(ctx context.Context, p entities.Plan) (entities.Plan, error)
	UpdatePlan(ctx context.Context, id string, p entities.Plan) (entities.Plan, error)
	DeletePlan(ctx context.Context, id string) error
	FeaturedPlan(ctx context.Context) (entities.Plan, error)

	ListBusinessPlans(ctx context.Context) ([]entities.BusinessPlan, error)
	CreateBusinessPlan(ctx context.Context, p entities.BusinessPlan) (entities.BusinessPlan, error)
	UpdateBusinessPlan(ctx context.Context, id string, p entities.BusinessPlan) (entities.BusinessPlan, error)
	DeleteBusinessPlan(ctx context.Context, id string) error
}

type CatalogUseCase struct {
	plans    interfaces.IPlanRepository
	business interfaces.IBusinessPlanRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(plans interfaces.IPlanRepository, business interfaces.IBusinessPlanRepository) *CatalogUseCase {
	return &CatalogUseCase{plans: plans, business: business}
}

// ListPlans returns the residential catalog sorted by speed ascending. The
// repository already sorts; sorting again here keeps the ordering guarantee
// independent of the storage backend.
func (u *CatalogUseCase) ListPlans(ctx context.Context) ([]entities.Plan, error) {
	list, err := u.plans.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Speed < list[j].Speed })
	return list, nil
}

func (u *CatalogUseCase) CreatePlan(ctx context.Context, p entities.Plan) (entities.Plan, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := validatePlanFields(p.Name, p.Speed, p.Price); err != nil {
		return entities.Plan{}, err
	}
	if p.OriginalPrice < p.Price {
		// Struck-through reference never undercuts the charged price.
		p.OriginalPrice = p.Price
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.plans.Create(ctx, p)
}

func (u *CatalogUseCase) UpdatePlan(ctx context.Context, id string, p entities.Plan) (entities.Plan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Plan{}, ErrInvalidPlanID
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := validatePlanFields(p.Name, p.Speed, p.Price); err != nil {
		return entities.Plan{}, err
	}
	if p.OriginalPrice < p.Price {
		p.OriginalPrice = p.Price
	}

	existing, err := u.plans.GetByID(ctx, id)
	if err != nil {
		return entities.Plan{}, err
	}
	if existing.ID == "" {
		return entities.Plan{}, ErrPlanNotFound
	}

	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	return u.plans.Update(ctx, p)
}

func (u *CatalogUseCase) DeletePlan(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPlanID
	}
	existing, err := u.plans.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrPlanNotFound
	}
	return u.plans.Delete(ctx, id)
}

// FeaturedPlan is the plan flagged recommended; when none is flagged the
// second plan in catalog order is the historical fallback.
func (u *CatalogUseCase) FeaturedPlan(ctx context.Context) (entities.Plan, error) {
	list, err := u.ListPlans(ctx)
	if err != nil {
		return entities.Plan{}, err
	}
	for _, p := range list {
		if p.Recommended {
			return p, nil
		}
	}
	if len(list) >= 2 {
		return list[1], nil
	}
	return entities.Plan{}, ErrNoFeaturedPlan
}

func (u *CatalogUseCase) ListBusinessPlans(ctx context.Context) ([]entities.BusinessPlan, error) {
	list, err := u.business.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Speed < list[j].Speed })
	return list, nil
}

func (u *CatalogUseCase) CreateBusinessPlan(ctx context.Context, p entities.BusinessPlan) (entities.BusinessPlan, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := validatePlanFields(p.Name, p.Speed, p.Price); err != nil {
		return entities.BusinessPlan{}, err
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.business.Create(ctx, p)
}

func (u *CatalogUseCase) UpdateBusinessPlan(ctx context.Context, id string, p entities.BusinessPlan) (entities.BusinessPlan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BusinessPlan{}, ErrInvalidPlanID
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := validatePlanFields(p.Name, p.Speed, p.Price); err != nil {
		return entities.BusinessPlan{}, err
	}

	existing, err := u.business.GetByID(ctx, id)
	if err != nil {
		return entities.BusinessPlan{}, err
	}
	if existing.ID == "" {
		return entities.BusinessPlan{}, ErrPlanNotFound
	}

	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	return u.business.Update(ctx, p)
}

func (u *CatalogUseCase) DeleteBusinessPlan(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPlanID
	}
	existing, err := u.business.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrPlanNotFound
	}
	return u.business.Delete(ctx, id)
}

func validatePlanFields(name string, speed int, price float64) error {
	if name == "" || speed <= 0 || price <= 0 {
		return ErrInvalidPlanField
	}
	return nil
}
