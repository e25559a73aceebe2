package command

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const adminPasswordEnv = "CIRCULATION_ADMIN_PASSWORD"

func newBootstrapAdminCmd(connect Connector) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "bootstrap-admin",
		Short: "Create the administrator account, or promote an existing one",
		Long: `bootstrap-admin creates an administrator account. If the username already
exists the account is promoted instead and its password is left unchanged.
Running it again is harmless.

The password comes from --password or the ` + adminPasswordEnv + ` variable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv(adminPasswordEnv)
			}
			if password == "" {
				return fmt.Errorf("a password is required: pass --password or set %s", adminPasswordEnv)
			}

			return withServices(cmd, connect, func(ctx context.Context, s Services) error {
				a, created, err := s.Accounts.BootstrapAdmin(ctx, username, password)
				if err != nil {
					return err
				}
				if created {
					fmt.Fprintf(cmd.OutOrStdout(), "created administrator %q (account %d)\n", a.Username, a.ID)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "account %q (account %d) is an administrator\n", a.Username, a.ID)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&username, "username", "admin", "administrator username")
	cmd.Flags().StringVar(&password, "password", "", "administrator password")
	return cmd
}

func newPurgeTokensCmd(connect Connector) *cobra.Command {
	return &cobra.Command{
		Use:   "purge-tokens",
		Short: "Delete revocation records of tokens that have expired",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, connect, func(ctx context.Context, s Services) error {
				n, err := s.Accounts.PurgeRevoked(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "purged %d expired revocations\n", n)
				return nil
			})
		},
	}
}
