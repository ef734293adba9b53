package interfaces

// IPasswordHasher hashes and verifies admin-panel passwords.
type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// ITokenManager issues and verifies session tokens for the admin panel.
// Verify returns the user id the token was issued for.
type ITokenManager interface {
	Issue(userID, email string) (string, error)
	Verify(token string) (userID string, err error)
}
