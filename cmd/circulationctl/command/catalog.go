package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCatalogCmd(connect Connector) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Maintain the book catalog",
	}
	cmd.AddCommand(newCatalogImportCmd(connect))
	return cmd
}

func newCatalogImportCmd(connect Connector) *cobra.Command {
	return &cobra.Command{
		Use:   "import [isbn...]",
		Short: "Import books from Open Library by ISBN",
		Long: `import looks each ISBN up on Open Library and adds the book with its authors
to the catalog. Books already in the catalog are left as they are.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, connect, func(ctx context.Context, s Services) error {
				report, err := s.Importer.Import(ctx, args)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "imported: %d\n", len(report.Imported))
				if len(report.Existing) > 0 {
					fmt.Fprintf(out, "already in catalog: %s\n", strings.Join(report.Existing, ", "))
				}
				if len(report.Missing) > 0 {
					fmt.Fprintf(out, "not found: %s\n", strings.Join(report.Missing, ", "))
				}
				return nil
			})
		},
	}
}
