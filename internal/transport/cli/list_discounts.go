package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"catalog_demo/internal/domain/service/discount"
	"catalog_demo/pkg/logx"
)

const (
	listDiscountsName        = "list_discounts"
	listDiscountsDescription = "List all discounts."
)

// ListDiscounts prints every discount in the catalog.
type ListDiscounts struct {
	client discount.CatalogClient
	out    discount.Logger
}

func NewListDiscounts(client discount.CatalogClient, out discount.Logger) ListDiscounts {
	return ListDiscounts{
		client: client,
		out:    out,
	}
}

func (ListDiscounts) Name() string {
	return listDiscountsName
}

func (ListDiscounts) Description() string {
	return listDiscountsDescription
}

func (e ListDiscounts) Command() *cobra.Command {
	var catalogVersion int64

	cmd := &cobra.Command{
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			svc := discount.NewService(e.client, e.out)
			if cmd.Flags().Changed("catalog-version") {
				svc = svc.WithCatalogVersion(catalogVersion)
			}

			stats := svc.ListAll(ctx)

			logger(ctx).Debug("example finished",
				slog.Int(logx.FieldPage, stats.Pages),
				slog.Int(logx.FieldObjects, stats.Discounts),
				logx.Stringer(logx.FieldOutcome, stats.Outcome),
			)

			if stats.Outcome.Failed() {
				return fmt.Errorf("%s: %s: %w", e.Name(), stats.Outcome, ErrExampleFailed)
			}

			return nil
		},
	}

	cmd.Flags().Int64Var(&catalogVersion, "catalog-version", 0, "list objects as of this catalog version (default latest)")

	return cmd
}
