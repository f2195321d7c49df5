package subcmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/forgeline/forgetop/internal/state"
)

func init() {
	pricingCmd := &cobra.Command{
		Use:   "pricing",
		Short: "Pricing records",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List pricing records",
		RunE:  runPricingList,
	}
	addListFlags(listCmd)

	pricingCmd.AddCommand(listCmd)
	RootCmd.AddCommand(pricingCmd)
}

func runPricingList(cmd *cobra.Command, args []string) error {
	client, query, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	items, page, err := client.ListPricing(ctx, query)
	if err != nil {
		return fmt.Errorf("list pricing: %w", err)
	}

	t := newTable(table.Row{"SKU", "Product", "Cur", "List", "Unit", "Std", "Variance", "Margin"})
	for _, rec := range items {
		t.AppendRow(table.Row{
			rec.SkuCode, rec.ProductName, rec.Currency,
			rec.ListPrice.StringFixed(2), rec.UnitCost.StringFixed(2),
			rec.StandardCost.StringFixed(2), rec.CostVariance.StringFixed(2),
			rec.Margin.StringFixed(2),
		})
	}
	t.Render()
	renderPageFooter(page)

	overview := state.BuildCostOverview(items)
	fmt.Printf("%d over standard cost, net variance %s\n",
		overview.OverStandard, overview.TotalVariance.StringFixed(2))
	return nil
}
