package ingest

import (
	"context"

	"circulation/internal/platform/openlibrary"
)

// Source looks books up by ISBN. Unknown ISBNs are absent from the result.
type Source interface {
	BooksByISBN(ctx context.Context, isbns []string) (map[string]openlibrary.BookDetails, error)
}

type Repository interface {
	// ExistingISBNs reports which of isbns are already in the catalog.
	ExistingISBNs(ctx context.Context, isbns []string) (map[string]bool, error)
	InsertBook(ctx context.Context, rec Record) error
}
