package catalog

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=catalog

// Repository defines the contract for book and borrower storage.
type Repository interface {
	BookByISBN(ctx context.Context, isbn string) (Book, error)
	BorrowerByCard(ctx context.Context, cardID int64) (Borrower, error)
	// LockBook and LockBorrower take row locks and must run inside a transaction.
	LockBook(ctx context.Context, isbn string) (Book, error)
	LockBorrower(ctx context.Context, cardID int64) (Borrower, error)
	CreateBorrower(ctx context.Context, b NewBorrower) (int64, error)
	UpdateContact(ctx context.Context, cardID int64, address, phone string) error
	SearchBooks(ctx context.Context, q BookQuery) ([]Book, int, error)
}
