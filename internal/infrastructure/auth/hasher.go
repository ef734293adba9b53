package auth

import (
	"parceiros_internet/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes admin-panel passwords with bcrypt at the default cost.
type BcryptHasher struct{}

var _ interfaces.IPasswordHasher = (*BcryptHasher)(nil)

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
