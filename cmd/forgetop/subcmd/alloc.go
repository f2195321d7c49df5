package subcmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/forgeline/forgetop/internal/forgeline"
)

var allocRunFlags struct {
	strategy  string
	warehouse string
}

func init() {
	allocCmd := &cobra.Command{
		Use:   "alloc",
		Short: "Inventory allocations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List inventory allocations",
		RunE:  runAllocList,
	}
	addListFlags(listCmd)

	runCmd := &cobra.Command{
		Use:   "run <order-id>",
		Short: "Allocate stock for an order",
		Args:  cobra.ExactArgs(1),
		RunE:  runAllocRun,
	}
	runCmd.Flags().StringVar(&allocRunFlags.strategy, "strategy", "", "allocation strategy (server default when empty)")
	runCmd.Flags().StringVar(&allocRunFlags.warehouse, "warehouse", "", "warehouse to allocate from")

	allocCmd.AddCommand(listCmd, runCmd)
	RootCmd.AddCommand(allocCmd)
}

func runAllocList(cmd *cobra.Command, args []string) error {
	client, query, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	items, page, err := client.ListAllocations(ctx, query)
	if err != nil {
		return fmt.Errorf("list allocations: %w", err)
	}

	t := newTable(table.Row{"Order", "SKU", "Part", "Warehouse", "Strategy", "Qty", "Status"})
	for _, alloc := range items {
		t.AppendRow(table.Row{
			alloc.OrderNumber, alloc.SkuCode, alloc.PartName,
			alloc.WarehouseID, alloc.Strategy, alloc.Quantity.String(), alloc.Status,
		})
	}
	t.Render()
	renderPageFooter(page)
	return nil
}

func runAllocRun(cmd *cobra.Command, args []string) error {
	client, _, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	result, err := client.AllocateOrder(ctx, args[0], forgeline.AllocateRequest{
		Strategy:    allocRunFlags.strategy,
		WarehouseID: allocRunFlags.warehouse,
	})
	if err != nil {
		return fmt.Errorf("allocate order: %w", err)
	}

	fmt.Printf("order %s: %d allocation(s) created\n", result.OrderID, len(result.AllocationIDs))
	if len(result.AllocationIDs) > 0 {
		fmt.Println(strings.Join(result.AllocationIDs, "\n"))
	}
	return nil
}
