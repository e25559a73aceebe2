package command

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"circulation/internal/fine"
	"circulation/internal/platform/calendar"
)

func newFinesCmd(connect Connector) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fines",
		Short: "Refresh, pay and list fines",
	}
	cmd.AddCommand(
		newFinesRefreshCmd(connect),
		newFinesPayCmd(connect),
		newFinesListCmd(connect),
	)
	return cmd
}

func newFinesRefreshCmd(connect Connector) *cobra.Command {
	var loanID int64

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Recompute fines for every loan, or for one loan with --loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, connect, func(ctx context.Context, s Services) error {
				if loanID > 0 {
					amount, err := s.Fines.Refresh(ctx, loanID)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "loan %d: fine $%s\n", loanID, amount.StringFixed(2))
					return nil
				}
				n, err := s.Fines.RefreshAll(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "refreshed fines for %d loans\n", n)
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&loanID, "loan", 0, "refresh a single loan")
	return cmd
}

func newFinesPayCmd(connect Connector) *cobra.Command {
	return &cobra.Command{
		Use:   "pay [card_id]",
		Short: "Mark every unpaid fine of a borrower as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := parseID("card id", args[0])
			if err != nil {
				return err
			}
			return withServices(cmd, connect, func(ctx context.Context, s Services) error {
				st, err := s.Fines.Pay(ctx, cardID)
				if err != nil {
					return err
				}
				if st.Count == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "card %d has no unpaid fines\n", cardID)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "card %d: paid %d fines totalling $%s\n", cardID, st.Count, st.Total.StringFixed(2))
				return nil
			})
		},
	}
}

func newFinesListCmd(connect Connector) *cobra.Command {
	var cardID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List unpaid fines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, connect, func(ctx context.Context, s Services) error {
				var (
					rows []fine.Outstanding
					err  error
				)
				if cardID > 0 {
					rows, err = s.Fines.OutstandingForBorrower(ctx, cardID)
				} else {
					rows, err = s.Fines.ListOutstanding(ctx)
				}
				if err != nil {
					return err
				}
				if len(rows) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no unpaid fines")
					return nil
				}

				total := decimal.Zero
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "FINE\tLOAN\tCARD\tBORROWER\tTITLE\tDUE\tAMOUNT")
				for _, f := range rows {
					total = total.Add(f.Amount)
					fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\t%s\t%s\n",
						f.FineID, f.LoanID, f.CardID, f.BorrowerName, f.Title,
						f.DueDate.Format(calendar.Layout), f.Amount.StringFixed(2))
				}
				fmt.Fprintf(tw, "\t\t\t\t\tTOTAL\t%s\n", total.StringFixed(2))
				return tw.Flush()
			})
		},
	}

	cmd.Flags().Int64Var(&cardID, "card", 0, "only this borrower")
	return cmd
}
