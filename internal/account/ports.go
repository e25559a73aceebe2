package account

import (
	"context"
	"time"

	"circulation/internal/catalog"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=account

// Repository defines the contract for account storage.
type Repository interface {
	Create(ctx context.Context, a NewAccount) (Account, error)
	GetByID(ctx context.Context, id int64) (Account, error)
	GetByUsername(ctx context.Context, username string) (Account, error)
	SetCard(ctx context.Context, id int64, cardID int64) error
	Promote(ctx context.Context, id int64) error
}

// Borrowers confirms that a card exists before it is linked.
type Borrowers interface {
	BorrowerByCard(ctx context.Context, cardID int64) (catalog.Borrower, error)
}

// Revocations records logged-out tokens until they expire.
type Revocations interface {
	Revoke(ctx context.Context, jti string, accountID int64, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	PurgeExpired(ctx context.Context) (int64, error)
}
