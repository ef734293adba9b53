package interfaces

import (
	"context"
	"parceiros_internet/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for admin-panel accounts.
type IUserRepository interface {
	Create(ctx context.Context, u entities.UserAccount) (entities.UserAccount, error)
	GetByID(ctx context.Context, id string) (entities.UserAccount, error)
	GetByEmail(ctx context.Context, email string) (entities.UserAccount, error)
}

// IUserRoleRepository answers the authorization question. HasRole is an
// exact-match lookup on (user_id, role); any lookup error must be treated as
// "no" by callers (fail closed).
type IUserRoleRepository interface {
	HasRole(ctx context.Context, userID, role string) (bool, error)
	Grant(ctx context.Context, r entities.UserRole) error
}
