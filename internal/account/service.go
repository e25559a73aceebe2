package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"circulation/internal/apperr"
	"circulation/internal/platform/crypto"
	"circulation/internal/platform/postgres"
)

type Service struct {
	repo      Repository
	borrowers Borrowers
	revoked   Revocations
	tx        postgres.Transactor
}

func NewService(repo Repository, borrowers Borrowers, revoked Revocations, tx postgres.Transactor) *Service {
	return &Service{repo: repo, borrowers: borrowers, revoked: revoked, tx: tx}
}

func validateCredentials(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if n := len(username); n < MinUsernameLength || n > MaxUsernameLength {
		return "", apperr.InvalidArgument("username must be between %d and %d characters", MinUsernameLength, MaxUsernameLength)
	}
	if err := crypto.ValidatePassword(password); err != nil {
		return "", apperr.InvalidArgument("%s", err.Error())
	}
	return username, nil
}

// Register creates a regular account, optionally linked to an existing
// borrower card.
func (s *Service) Register(ctx context.Context, username, password string, cardID *int64) (Account, error) {
	username, err := validateCredentials(username, password)
	if err != nil {
		return Account{}, err
	}
	if cardID != nil {
		if _, err := s.borrowers.BorrowerByCard(ctx, *cardID); err != nil {
			return Account{}, err
		}
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return Account{}, fmt.Errorf("hash password: %w", err)
	}
	return s.repo.Create(ctx, NewAccount{Username: username, PasswordHash: hash, CardID: cardID})
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (Account, error) {
	a, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Account{}, ErrInvalidCredentials
		}
		return Account{}, err
	}
	if !crypto.VerifyPassword(a.PasswordHash, password) {
		return Account{}, ErrInvalidCredentials
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Account, error) {
	return s.repo.GetByID(ctx, id)
}

// ResolveBorrower returns the card linked to the account.
func (s *Service) ResolveBorrower(ctx context.Context, accountID int64) (int64, error) {
	a, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return 0, err
	}
	if a.CardID == nil {
		return 0, apperr.PolicyViolation(apperr.ReasonNoBorrowerCard,
			"account '%s' is not linked to a borrower card", a.Username)
	}
	return *a.CardID, nil
}

func (s *Service) LinkBorrower(ctx context.Context, accountID, cardID int64) error {
	if cardID <= 0 {
		return apperr.InvalidArgument("card id must be positive, got %d", cardID)
	}
	if _, err := s.borrowers.BorrowerByCard(ctx, cardID); err != nil {
		return err
	}
	return s.repo.SetCard(ctx, accountID, cardID)
}

// BootstrapAdmin creates an administrator, or promotes the existing account
// with that username. Running it twice is harmless. created reports whether
// a new account was made.
func (s *Service) BootstrapAdmin(ctx context.Context, username, password string) (a Account, created bool, err error) {
	username, err = validateCredentials(username, password)
	if err != nil {
		return Account{}, false, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByUsername(ctx, username)
		switch {
		case err == nil:
			if !existing.IsAdmin {
				if err := s.repo.Promote(ctx, existing.ID); err != nil {
					return err
				}
				existing.IsAdmin = true
			}
			a = existing
			return nil
		case errors.Is(err, apperr.ErrNotFound):
		default:
			return err
		}

		hash, err := crypto.HashPassword(password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		a, err = s.repo.Create(ctx, NewAccount{Username: username, PasswordHash: hash, IsAdmin: true})
		created = err == nil
		return err
	})
	if err != nil {
		return Account{}, false, err
	}
	return a, created, nil
}

// Logout revokes the token jti of accountID until it expires.
func (s *Service) Logout(ctx context.Context, accountID int64, jti string, expiresAt time.Time) error {
	if jti == "" {
		return apperr.InvalidArgument("token has no id")
	}
	return s.revoked.Revoke(ctx, jti, accountID, expiresAt)
}

func (s *Service) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	return s.revoked.IsRevoked(ctx, jti)
}

func (s *Service) PurgeRevoked(ctx context.Context) (int64, error) {
	return s.revoked.PurgeExpired(ctx)
}
