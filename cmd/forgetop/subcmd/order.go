package subcmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/forgeline/forgetop/internal/forgeline"
)

var confirmFlags struct {
	orderStatus       string
	shipmentStatus    string
	fulfillmentStatus string
	allocationStatus  string
}

func init() {
	orderCmd := &cobra.Command{
		Use:   "order",
		Short: "Outbound orders",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List outbound orders",
		RunE:  runOrderList,
	}
	addListFlags(listCmd)

	confirmCmd := &cobra.Command{
		Use:   "confirm <order-id>",
		Short: "Confirm fulfillment for an order",
		Args:  cobra.ExactArgs(1),
		RunE:  runOrderConfirm,
	}
	confirmCmd.Flags().StringVar(&confirmFlags.orderStatus, "order-status", "closed", "target order status")
	confirmCmd.Flags().StringVar(&confirmFlags.shipmentStatus, "shipment-status", "shipped", "target shipment status")
	confirmCmd.Flags().StringVar(&confirmFlags.fulfillmentStatus, "fulfillment-status", "fulfilled", "target fulfillment status")
	confirmCmd.Flags().StringVar(&confirmFlags.allocationStatus, "allocation-status", "", "target allocation status (optional)")

	orderCmd.AddCommand(listCmd, confirmCmd)
	RootCmd.AddCommand(orderCmd)
}

func runOrderList(cmd *cobra.Command, args []string) error {
	client, query, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	items, page, err := client.ListOrders(ctx, query)
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}

	t := newTable(table.Row{"Order", "Customer", "Status", "Fulfillment", "Allocation", "Lines", "Value", "Promised"})
	for _, order := range items {
		t.AppendRow(table.Row{
			order.OrderNumber, order.CustomerName, order.OrderStatus,
			order.FulfillmentStatus, order.AllocationStatus,
			order.LineCount, order.TotalValue.StringFixed(2), order.PromisedDate,
		})
	}
	t.Render()
	renderPageFooter(page)
	return nil
}

func runOrderConfirm(cmd *cobra.Command, args []string) error {
	client, _, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	updated, err := client.ConfirmFulfillment(ctx, args[0], forgeline.ConfirmRequest{
		OrderStatus:       confirmFlags.orderStatus,
		ShipmentStatus:    confirmFlags.shipmentStatus,
		FulfillmentStatus: confirmFlags.fulfillmentStatus,
		AllocationStatus:  confirmFlags.allocationStatus,
	})
	if err != nil {
		return fmt.Errorf("confirm fulfillment: %w", err)
	}

	fmt.Printf("order %s confirmed: order=%s shipment=%s fulfillment=%s\n",
		updated.OrderNumber, updated.OrderStatus, updated.ShipmentStatus, updated.FulfillmentStatus)
	return nil
}
