// Package command implements circulationctl, the operator CLI. Commands talk
// to the database directly through the same services as the API.
package command

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"circulation/internal/account"
	"circulation/internal/app"
	"circulation/internal/config"
	"circulation/internal/fine"
	"circulation/internal/ingest"
	"circulation/internal/loan"
	"circulation/internal/platform/logging"
	"circulation/internal/platform/postgres"
)

// Loans is the loan ledger as seen by the CLI.
type Loans interface {
	Checkout(ctx context.Context, isbn string, cardID int64) (int64, error)
	Checkin(ctx context.Context, loanID int64) error
	CheckinMany(ctx context.Context, ids []int64) (loan.BatchResult, error)
	FindOpen(ctx context.Context, f loan.Filter) ([]loan.OpenLoan, error)
}

// Fines is the fine ledger as seen by the CLI.
type Fines interface {
	Refresh(ctx context.Context, loanID int64) (decimal.Decimal, error)
	RefreshAll(ctx context.Context) (int, error)
	Pay(ctx context.Context, cardID int64) (fine.Settlement, error)
	ListOutstanding(ctx context.Context) ([]fine.Outstanding, error)
	OutstandingForBorrower(ctx context.Context, cardID int64) ([]fine.Outstanding, error)
}

type Accounts interface {
	BootstrapAdmin(ctx context.Context, username, password string) (account.Account, bool, error)
	PurgeRevoked(ctx context.Context) (int64, error)
}

type Importer interface {
	Import(ctx context.Context, isbns []string) (ingest.Report, error)
}

type Services struct {
	Loans    Loans
	Fines    Fines
	Accounts Accounts
	Importer Importer
}

// Connector opens the services a command needs. The returned func releases
// them.
type Connector func(ctx context.Context) (Services, func(), error)

// Connect opens the database named by the environment.
func Connect(ctx context.Context) (Services, func(), error) {
	cfg, err := config.Load(false)
	if err != nil {
		return Services{}, nil, err
	}
	logger := logging.New(cfg.LogFormat, cfg.LogLevel)

	pool, err := postgres.Open(ctx, cfg.DSN)
	if err != nil {
		return Services{}, nil, fmt.Errorf("connect to %s: %w", config.RedactDSN(cfg.DSN), err)
	}
	a := app.New(pool, cfg, nil, logger)
	return Services{Loans: a.Loans, Fines: a.Fines, Accounts: a.Accounts, Importer: a.Importer}, pool.Close, nil
}

// NewRootCmd builds the command tree. Every subcommand obtains its services
// through connect.
func NewRootCmd(connect Connector) *cobra.Command {
	root := &cobra.Command{
		Use:   "circulationctl",
		Short: "circulationctl - library circulation operator tool",
		Long: `circulationctl runs loan and fine operations against the circulation database.
It reads DB_DSN and the other settings from the environment, .env and .env.local.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newBootstrapAdminCmd(connect),
		newPurgeTokensCmd(connect),
		newCheckoutCmd(connect),
		newCheckinCmd(connect),
		newLoansCmd(connect),
		newFinesCmd(connect),
		newCatalogCmd(connect),
	)
	return root
}

// withServices opens the services for the duration of fn.
func withServices(cmd *cobra.Command, connect Connector, fn func(ctx context.Context, s Services) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, release, err := connect(ctx)
	if err != nil {
		return err
	}
	defer release()
	return fn(ctx, s)
}

// Execute runs the CLI against the configured database.
func Execute() {
	if err := NewRootCmd(Connect).Execute(); err != nil {
		os.Exit(1)
	}
}
