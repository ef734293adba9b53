package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"parceiros_internet/internal/domain/entities"
	"parceiros_internet/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("password must have at least 6 characters")
)

// Session is a signed-in admin-panel identity.
type Session struct {
	Token   string
	User    entities.UserAccount
	IsAdmin bool
}

// IAuthUseCase handles admin-panel accounts and authorization.
//
// Signing up creates an account with no roles; someone has to grant "admin"
// in the user_roles table before the editing surface opens. IsAdmin fails
// closed: any lookup error reads as "not admin".
type IAuthUseCase interface {
	SignUp(ctx context.Context, email, password string) (entities.UserAccount, error)
	SignIn(ctx context.Context, email, password string) (Session, error)
	IsAdmin(ctx context.Context, userID string) bool
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	roles  interfaces.IUserRoleRepository
	hasher interfaces.IPasswordHasher
	tokens interfaces.ITokenManager
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	users interfaces.IUserRepository,
	roles interfaces.IUserRoleRepository,
	hasher interfaces.IPasswordHasher,
	tokens interfaces.ITokenManager,
) *AuthUseCase {
	return &AuthUseCase{users: users, roles: roles, hasher: hasher, tokens: tokens}
}

func (u *AuthUseCase) SignUp(ctx context.Context, email, password string) (entities.UserAccount, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return entities.UserAccount{}, ErrInvalidEmail
	}
	if len(password) < 6 {
		return entities.UserAccount{}, ErrWeakPassword
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.UserAccount{}, err
	}
	if existing.ID != "" {
		return entities.UserAccount{}, ErrEmailTaken
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return entities.UserAccount{}, err
	}
	account := entities.UserAccount{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	return u.users.Create(ctx, account)
}

func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) (Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	account, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return Session{}, err
	}
	if account.ID == "" {
		return Session{}, ErrInvalidCredentials
	}
	if err := u.hasher.Compare(account.PasswordHash, password); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(account.ID, account.Email)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, User: account, IsAdmin: u.IsAdmin(ctx, account.ID)}, nil
}

// IsAdmin is the secondary authorization check behind every admin route.
func (u *AuthUseCase) IsAdmin(ctx context.Context, userID string) bool {
	if userID == "" {
		return false
	}
	ok, err := u.roles.HasRole(ctx, userID, entities.RoleAdmin)
	if err != nil {
		// Fail closed. Denying a real admin beats opening the editor to
		// everyone while the roles table is unreachable.
		log.Printf("[auth][roles] admin check failed user=%s err=%v", userID, err)
		return false
	}
	return ok
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
