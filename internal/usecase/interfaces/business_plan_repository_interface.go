package interfaces

import (
	"context"
	"parceiros_internet/internal/domain/entities"
)

// IBusinessPlanRepository abstracts DynamoDB persistence for business plans.
// Same conventions as IPlanRepository; the two catalogs never mix.
type IBusinessPlanRepository interface {
	List(ctx context.Context) ([]entities.BusinessPlan, error)
	GetByID(ctx context.Context, id string) (entities.BusinessPlan, error)
	Create(ctx context.Context, p entities.BusinessPlan) (entities.BusinessPlan, error)
	Update(ctx context.Context, p entities.BusinessPlan) (entities.BusinessPlan, error)
	Delete(ctx context.Context, id string) error
}
