package command

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"circulation/internal/loan"
	"circulation/internal/platform/calendar"
)

func newCheckoutCmd(connect Connector) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout [isbn] [card_id]",
		Short: "Check a book out to a borrower",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := parseID("card id", args[1])
			if err != nil {
				return err
			}
			return withServices(cmd, connect, func(ctx context.Context, s Services) error {
				loanID, err := s.Loans.Checkout(ctx, args[0], cardID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "loan %d: %s checked out to card %d\n", loanID, args[0], cardID)
				return nil
			})
		},
	}
}

func newCheckinCmd(connect Connector) *cobra.Command {
	return &cobra.Command{
		Use:   "checkin [loan_id...]",
		Short: "Check in one or more loans",
		Long: `checkin closes the given loans in order and refreshes their fines. With
several ids it stops at the first failure; later ids are reported as skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, a := range args {
				id, err := parseID("loan id", a)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			return withServices(cmd, connect, func(ctx context.Context, s Services) error {
				out := cmd.OutOrStdout()
				if len(ids) == 1 {
					if err := s.Loans.Checkin(ctx, ids[0]); err != nil {
						return err
					}
					fmt.Fprintf(out, "loan %d checked in\n", ids[0])
					return nil
				}

				res, err := s.Loans.CheckinMany(ctx, ids)
				if err != nil {
					return err
				}
				for _, r := range res.Results {
					msg := r.Error
					if r.Err() != nil {
						msg = r.Err().Error()
					}
					if msg != "" {
						fmt.Fprintf(out, "loan %d: %s (%s)\n", r.LoanID, r.Outcome, msg)
						continue
					}
					fmt.Fprintf(out, "loan %d: %s\n", r.LoanID, r.Outcome)
				}
				if n := res.CheckedIn(); n < len(ids) {
					return fmt.Errorf("checked in %d of %d loans", n, len(ids))
				}
				return nil
			})
		},
	}
}

func newLoansCmd(connect Connector) *cobra.Command {
	var f loan.Filter

	cmd := &cobra.Command{
		Use:   "loans",
		Short: "List open loans",
		Long:  `loans lists open loans, optionally filtered by ISBN, card id or a borrower name fragment.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, connect, func(ctx context.Context, s Services) error {
				loans, err := s.Loans.FindOpen(ctx, f)
				if err != nil {
					return err
				}
				if len(loans) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no open loans")
					return nil
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "LOAN\tISBN\tTITLE\tCARD\tBORROWER\tOUT\tDUE")
				for _, l := range loans {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\t%s\n",
						l.LoanID, l.ISBN, l.Title, l.CardID, l.BorrowerName,
						l.DateOut.Format(calendar.Layout), l.DueDate.Format(calendar.Layout))
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&f.ISBN, "isbn", "", "exact ISBN")
	cmd.Flags().Int64Var(&f.CardID, "card", 0, "borrower card id")
	cmd.Flags().StringVar(&f.Name, "name", "", "borrower name fragment")
	return cmd
}

func parseID(what, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	return id, nil
}
