package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circulation/internal/apperr"
	"circulation/internal/testutil"
)

func TestSearchPageSQL(t *testing.T) {
	q := BookQuery{Q: "tolk", Status: StatusCheckedOut, Page: 3, PageSize: 10}

	sql, args, err := searchPageSQL(q)
	require.NoError(t, err)

	assert.Contains(t, sql, `"b"."isbn" ILIKE $1`)
	assert.Contains(t, sql, `"b"."title" ILIKE $2`)
	assert.Contains(t, sql, `a.name ILIKE $3`)
	assert.Contains(t, sql, "bl.date_in IS NULL")
	assert.NotContains(t, sql, "NOT EXISTS")
	assert.Contains(t, sql, `ORDER BY "b"."title" ASC, "b"."isbn" ASC`)
	require.Len(t, args, 5)
	assert.Equal(t, []any{"%tolk%", "%tolk%", "%tolk%"}, args[:3])
	assert.EqualValues(t, 10, args[3])
	assert.EqualValues(t, 20, args[4])
}

func TestSearchCountSQL_NoFilters(t *testing.T) {
	sql, args, err := searchCountSQL(BookQuery{Status: StatusAll})
	require.NoError(t, err)

	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, args)
}

func TestSearchCountSQL_Available(t *testing.T) {
	sql, _, err := searchCountSQL(BookQuery{Status: StatusAvailable})
	require.NoError(t, err)

	assert.Contains(t, sql, "NOT EXISTS")
}

func TestPostgresRepo_Integration(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewPostgresRepo(db, 3*time.Second)
	ctx := context.Background()

	testutil.InsertBook(t, db, "0261103342", "The Hobbit", "J.R.R. Tolkien")
	testutil.InsertBook(t, db, "0451524934", "1984", "George Orwell")
	card := testutil.InsertBorrower(t, db, "111223333", "Ann Reader")
	testutil.InsertLoan(t, db, "0451524934", card, "2024-01-01", "2024-01-15", "")

	t.Run("book by isbn", func(t *testing.T) {
		b, err := repo.BookByISBN(ctx, "0261103342")
		require.NoError(t, err)
		assert.Equal(t, []string{"J.R.R. Tolkien"}, b.Authors)
		assert.Equal(t, AvailabilityIn, b.Availability)

		_, err = repo.BookByISBN(ctx, "9999999999")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("search by author and status", func(t *testing.T) {
		books, total, err := repo.SearchBooks(ctx, BookQuery{Q: "tolkien"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, books, 1)
		assert.Equal(t, "The Hobbit", books[0].Title)

		books, total, err = repo.SearchBooks(ctx, BookQuery{Status: StatusCheckedOut})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, AvailabilityOut, books[0].Availability)
	})

	t.Run("borrowers", func(t *testing.T) {
		id, err := repo.CreateBorrower(ctx, NewBorrower{SSN: "222334444", Name: "Bo", Address: "2 Elm"})
		require.NoError(t, err)

		_, err = repo.CreateBorrower(ctx, NewBorrower{SSN: "222334444", Name: "Dup", Address: "3 Elm"})
		assert.ErrorIs(t, err, apperr.ErrConflict)
		assert.Equal(t, apperr.ReasonDuplicateSSN, apperr.ReasonOf(err))

		require.NoError(t, repo.UpdateContact(ctx, id, "9 Oak", "555-0199"))
		b, err := repo.BorrowerByCard(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "9 Oak", b.Address)
		assert.Equal(t, "555-0199", b.Phone)

		err = repo.UpdateContact(ctx, 424242, "x", "")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}
