package entities

import "time"

// UserAccount is an email/password identity for the admin panel.
//
// Storage model (DynamoDB):
//   - PK: id
//   - email is unique (conditional put on the email item, see repository)
type UserAccount struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Role values recorded in the user_roles table.
const RoleAdmin = "admin"

// UserRole grants a role to a user. Authorization is an exact-match lookup on
// (user_id, role); having an account grants nothing by itself.
//
// Storage model (DynamoDB):
//   - PK: user_id
//   - SK: role
type UserRole struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
