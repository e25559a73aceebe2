package catalog

import (
	"context"
	"strings"

	"circulation/internal/apperr"
)

// Service provides catalog lookups and borrower maintenance.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) BookByISBN(ctx context.Context, isbn string) (Book, error) {
	isbn = NormalizeISBN(isbn)
	if isbn == "" {
		return Book{}, apperr.InvalidArgument("isbn is required")
	}
	return s.repo.BookByISBN(ctx, isbn)
}

func (s *Service) BorrowerByCard(ctx context.Context, cardID int64) (Borrower, error) {
	if cardID <= 0 {
		return Borrower{}, apperr.InvalidArgument("card id must be positive, got %d", cardID)
	}
	return s.repo.BorrowerByCard(ctx, cardID)
}

// LockBook returns the book and holds its row lock until the surrounding
// transaction ends.
func (s *Service) LockBook(ctx context.Context, isbn string) (Book, error) {
	return s.repo.LockBook(ctx, NormalizeISBN(isbn))
}

// LockBorrower is the borrower counterpart of LockBook.
func (s *Service) LockBorrower(ctx context.Context, cardID int64) (Borrower, error) {
	return s.repo.LockBorrower(ctx, cardID)
}

// CreateBorrower registers a borrower and returns the assigned card id.
func (s *Service) CreateBorrower(ctx context.Context, nb NewBorrower) (int64, error) {
	nb.Name = strings.TrimSpace(nb.Name)
	nb.Address = strings.TrimSpace(nb.Address)
	nb.Phone = strings.TrimSpace(nb.Phone)
	nb.SSN = NormalizeSSN(nb.SSN)

	switch {
	case nb.Name == "":
		return 0, apperr.InvalidArgument("name is required")
	case nb.Address == "":
		return 0, apperr.InvalidArgument("address is required")
	case len(nb.SSN) != 9:
		return 0, apperr.InvalidArgument("ssn must contain 9 digits")
	}
	return s.repo.CreateBorrower(ctx, nb)
}

func (s *Service) UpdateContact(ctx context.Context, cardID int64, address, phone string) error {
	address = strings.TrimSpace(address)
	if cardID <= 0 {
		return apperr.InvalidArgument("card id must be positive, got %d", cardID)
	}
	if address == "" {
		return apperr.InvalidArgument("address is required")
	}
	return s.repo.UpdateContact(ctx, cardID, address, strings.TrimSpace(phone))
}

// SearchBooks returns one page of matching books and the total match count.
func (s *Service) SearchBooks(ctx context.Context, q BookQuery) ([]Book, int, error) {
	return s.repo.SearchBooks(ctx, q.normalized())
}
