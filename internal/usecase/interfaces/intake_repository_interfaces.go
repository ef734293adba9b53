package interfaces

import (
	"context"
	"parceiros_internet/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for captured leads.
type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
}

// IContractRepository abstracts DynamoDB persistence for contract requests.
//
// Create must fail if the protocol already exists (conditional put); the
// protocol is the customer-facing receipt and must stay unambiguous.
type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByProtocol(ctx context.Context, protocol string) (entities.Contract, error)
	List(ctx context.Context) ([]entities.Contract, error)
}
