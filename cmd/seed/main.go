package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"circulation/internal/app"
	"circulation/internal/catalog"
	"circulation/internal/config"
	"circulation/internal/platform/calendar"
	"circulation/internal/platform/logging"
	"circulation/internal/platform/postgres"
)

type options struct {
	books       int
	borrowers   int
	overdueCard int64
	overdueDays int
	seed        int64
}

func main() {
	var opts options
	flag.IntVar(&opts.books, "books", 500, "number of books to generate")
	flag.IntVar(&opts.borrowers, "borrowers", 50, "number of borrowers to generate")
	flag.Int64Var(&opts.overdueCard, "overdue-card", 0, "also create an overdue loan with a fine for this card")
	flag.IntVar(&opts.overdueDays, "overdue-days", 6, "days past due for -overdue-card")
	flag.Int64Var(&opts.seed, "seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	cfg, err := config.Load(false)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogFormat, cfg.LogLevel)

	ctx := context.Background()
	pool, err := postgres.Open(ctx, cfg.DSN)
	if err != nil {
		logger.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := run(ctx, pool, cfg, logger, opts); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, pool *pgxpool.Pool, cfg config.Config, logger *slog.Logger, opts options) error {
	rnd := rand.New(rand.NewSource(opts.seed))
	a := app.New(pool, cfg, nil, logger)

	books := generateBooks(opts.books, rnd)
	if err := insertBooks(ctx, pool, books); err != nil {
		return err
	}
	logger.Info("books inserted", "count", len(books))

	created := 0
	for _, nb := range generateBorrowers(opts.borrowers, rnd) {
		if _, err := a.Catalog.CreateBorrower(ctx, nb); err != nil {
			logger.Warn("borrower skipped", "name", nb.Name, "error", err)
			continue
		}
		created++
	}
	logger.Info("borrowers inserted", "count", created)

	if opts.overdueCard > 0 {
		loanID, err := createOverdueLoan(ctx, pool, opts.overdueCard, opts.overdueDays, cfg.Location)
		if err != nil {
			return err
		}
		amount, err := a.Fines.Refresh(ctx, loanID)
		if err != nil {
			return fmt.Errorf("refresh fine for loan %d: %w", loanID, err)
		}
		logger.Info("overdue loan created",
			"card_id", opts.overdueCard,
			"loan_id", loanID,
			"fine", amount.StringFixed(2),
		)
	}
	return nil
}

type seedBook struct {
	ISBN    string
	Title   string
	Authors []string
}

var (
	titleWords = []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Reality", "Imagination", "Wisdom", "Light", "Darkness", "World", "Time",
	}
	firstNames = []string{"Ada", "Alan", "Grace", "Edsger", "Barbara", "Donald", "Frances", "Ken", "Margaret", "Niklaus"}
	lastNames  = []string{"Lovelace", "Turing", "Hopper", "Dijkstra", "Liskov", "Knuth", "Allen", "Thompson", "Hamilton", "Wirth"}
	streets    = []string{"Main St", "Oak Ave", "Elm St", "Maple Dr", "Cedar Ln", "Pine Rd"}
)

func pick(rnd *rand.Rand, words []string) string {
	return words[rnd.Intn(len(words))]
}

// generateBooks returns n books with distinct 13-digit ISBNs and one to
// three authors each.
func generateBooks(n int, rnd *rand.Rand) []seedBook {
	books := make([]seedBook, 0, n)
	for i := 0; i < n; i++ {
		b := seedBook{
			ISBN:  fmt.Sprintf("978%010d", i+1),
			Title: fmt.Sprintf("The %s of %s", pick(rnd, titleWords), pick(rnd, titleWords)),
		}
		seen := map[string]bool{}
		for j := 0; j < 1+rnd.Intn(3); j++ {
			name := pick(rnd, firstNames) + " " + pick(rnd, lastNames)
			if !seen[name] {
				seen[name] = true
				b.Authors = append(b.Authors, name)
			}
		}
		books = append(books, b)
	}
	return books
}

func generateBorrowers(n int, rnd *rand.Rand) []catalog.NewBorrower {
	out := make([]catalog.NewBorrower, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, catalog.NewBorrower{
			SSN:     fmt.Sprintf("9%02d-%02d-%04d", i/10000%100, i/100%100, i%10000),
			Name:    pick(rnd, firstNames) + " " + pick(rnd, lastNames),
			Address: fmt.Sprintf("%d %s", 1+rnd.Intn(999), pick(rnd, streets)),
			Phone:   fmt.Sprintf("555-%04d", rnd.Intn(10000)),
		})
	}
	return out
}

func insertBooks(ctx context.Context, pool *pgxpool.Pool, books []seedBook) error {
	var existing int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&existing); err != nil {
		return fmt.Errorf("count books: %w", err)
	}
	if existing > 0 {
		return fmt.Errorf("catalog already holds %d books; seed an empty database", existing)
	}

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		rows := make([][]any, 0, len(books))
		for _, b := range books {
			rows = append(rows, []any{b.ISBN, b.Title})
		}
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"books"}, []string{"isbn", "title"}, pgx.CopyFromRows(rows)); err != nil {
			return fmt.Errorf("copy books: %w", err)
		}

		batch := &pgx.Batch{}
		for _, b := range books {
			for _, name := range b.Authors {
				batch.Queue(`
					WITH a AS (
						INSERT INTO authors (name) VALUES ($1)
						ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
						RETURNING author_id
					)
					INSERT INTO book_authors (author_id, isbn) SELECT author_id, $2 FROM a`, name, b.ISBN)
			}
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("link authors: %w", err)
		}
		return nil
	})
}

// createOverdueLoan checks out an available book to cardID with a due date
// daysOverdue days in the past.
func createOverdueLoan(ctx context.Context, pool *pgxpool.Pool, cardID int64, daysOverdue int, loc *time.Location) (int64, error) {
	today := calendar.Today(time.Now, loc)
	due := calendar.AddDays(today, -daysOverdue)
	out := calendar.AddDays(due, -14)

	var loanID int64
	err := pool.QueryRow(ctx, `
		INSERT INTO book_loans (isbn, card_id, date_out, due_date)
		SELECT b.isbn, $1, $2, $3
		FROM books b
		WHERE NOT EXISTS (SELECT 1 FROM book_loans bl WHERE bl.isbn = b.isbn AND bl.date_in IS NULL)
		ORDER BY b.isbn
		LIMIT 1
		RETURNING loan_id`, cardID, out, due).Scan(&loanID)
	if err != nil {
		return 0, fmt.Errorf("create overdue loan for card %d: %w", cardID, err)
	}
	return loanID, nil
}
