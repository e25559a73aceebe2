package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert loan: %w", &pgconn.PgError{Code: "23505", ConstraintName: "book_loans_one_open_per_book"})

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "book_loans_one_open_per_book"))
	assert.False(t, IsUniqueViolation(err, "borrowers_ssn_key"))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}, ""))
	assert.False(t, IsUniqueViolation(errors.New("boom"), ""))
}

func TestInTx_EmptyContext(t *testing.T) {
	assert.False(t, InTx(context.Background()))
}
