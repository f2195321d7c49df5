package subcmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	productCmd := &cobra.Command{
		Use:   "product",
		Short: "Product/SKU catalog",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		RunE:  runProductList,
	}
	addListFlags(listCmd)

	productCmd.AddCommand(listCmd)
	RootCmd.AddCommand(productCmd)
}

func runProductList(cmd *cobra.Command, args []string) error {
	client, query, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	items, page, err := client.ListProducts(ctx, query)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}

	t := newTable(table.Row{"SKU", "Name", "Category", "Status", "On Hand", "Reserved", "Available"})
	for _, product := range items {
		t.AppendRow(table.Row{
			product.SkuCode, product.Name, product.Category, product.Status,
			product.OnHand.String(), product.Reserved.String(), product.Available().String(),
		})
	}
	t.Render()
	renderPageFooter(page)
	return nil
}
