// Package account maps login identities to borrower cards.
package account

import (
	"errors"
	"time"

	"circulation/internal/platform/crypto"
)

// ErrInvalidCredentials is returned by Authenticate for an unknown username
// or a wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")

const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
)

type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CardID       *int64    `json:"card_id,omitempty"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a Account) Role() string {
	if a.IsAdmin {
		return crypto.RoleAdmin
	}
	return crypto.RoleUser
}

type NewAccount struct {
	Username     string
	PasswordHash string
	CardID       *int64
	IsAdmin      bool
}
