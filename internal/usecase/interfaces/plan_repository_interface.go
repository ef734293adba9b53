package interfaces

import (
	"context"
	"parceiros_internet/internal/domain/entities"
)

// IPlanRepository abstracts DynamoDB persistence for residential plans.
//
// List returns the catalog sorted by speed ascending; the rendered order on
// the site depends on it. Lookups that find nothing return a zero-value Plan
// with a nil error; callers test ID == "".
type IPlanRepository interface {
	List(ctx context.Context) ([]entities.Plan, error)
	GetByID(ctx context.Context, id string) (entities.Plan, error)
	Create(ctx context.Context, p entities.Plan) (entities.Plan, error)
	Update(ctx context.Context, p entities.Plan) (entities.Plan, error)
	Delete(ctx context.Context, id string) error
}
