// Package app wires the ledgers onto a database pool. The API server and the
// operator CLI share it so both run the same rules.
package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"circulation/internal/account"
	"circulation/internal/catalog"
	"circulation/internal/config"
	"circulation/internal/fine"
	"circulation/internal/ingest"
	"circulation/internal/loan"
	"circulation/internal/platform/calendar"
	"circulation/internal/platform/openlibrary"
	"circulation/internal/platform/postgres"
)

type App struct {
	Catalog  *catalog.Service
	Loans    *loan.Service
	Fines    *fine.Service
	Accounts *account.Service
	Importer *ingest.Service
}

const userAgent = "circulation/1.0"

// New builds every service. clock may be nil for the wall clock.
func New(pool *pgxpool.Pool, cfg config.Config, clock calendar.Clock, logger *slog.Logger) *App {
	tx := postgres.NewTxManager(pool)

	catalogSvc := catalog.NewService(catalog.NewPostgresRepo(pool, cfg.DBTimeout))
	fineSvc := fine.NewService(fine.NewPostgresRepo(pool, cfg.DBTimeout), catalogSvc, tx, clock, cfg.Location)
	loanSvc := loan.NewService(loan.Deps{
		Repo:    loan.NewPostgresRepo(pool, cfg.DBTimeout),
		Catalog: catalogSvc,
		Fines:   fineSvc,
		Tx:      tx,
		Clock:   clock,
		Loc:     cfg.Location,
		Logger:  logger,
	})
	accountRepo := account.NewPostgresRepo(pool, cfg.DBTimeout)
	accountSvc := account.NewService(accountRepo, catalogSvc, accountRepo, tx)
	importer := ingest.NewService(
		openlibrary.NewClient(cfg.OpenLibraryURL, userAgent, cfg.OpenLibraryRPS, 3),
		ingest.NewPostgresRepo(pool, cfg.DBTimeout),
		tx,
		ingest.DefaultBatchSize,
		logger,
	)

	return &App{
		Catalog:  catalogSvc,
		Loans:    loanSvc,
		Fines:    fineSvc,
		Accounts: accountSvc,
		Importer: importer,
	}
}
