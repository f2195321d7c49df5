package subcmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	bomCmd := &cobra.Command{
		Use:   "bom",
		Short: "Bills of materials",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List BOMs",
		RunE:  runBomList,
	}
	addListFlags(listCmd)

	bomCmd.AddCommand(listCmd)
	bomCmd.AddCommand(&cobra.Command{
		Use:   "show <bom-id>",
		Short: "Show one BOM with its component lines",
		Args:  cobra.ExactArgs(1),
		RunE:  runBomShow,
	})
	bomCmd.AddCommand(&cobra.Command{
		Use:   "readiness <bom-id>",
		Short: "Check production readiness for a BOM",
		Args:  cobra.ExactArgs(1),
		RunE:  runBomReadiness,
	})
	RootCmd.AddCommand(bomCmd)
}

func runBomList(cmd *cobra.Command, args []string) error {
	client, query, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	items, page, err := client.ListBoms(ctx, query)
	if err != nil {
		return fmt.Errorf("list boms: %w", err)
	}

	t := newTable(table.Row{"BOM", "Product", "SKU", "Rev", "Status", "Lines", "Cost"})
	for _, bom := range items {
		t.AppendRow(table.Row{
			bom.BomNumber, bom.ProductName, bom.SkuCode, bom.Revision,
			bom.Status, bom.LineCount, bom.TotalCost.StringFixed(2),
		})
	}
	t.Render()
	renderPageFooter(page)
	return nil
}

func runBomShow(cmd *cobra.Command, args []string) error {
	client, _, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	detail, err := client.FetchBomDetail(ctx, args[0])
	if err != nil {
		return fmt.Errorf("fetch bom detail: %w", err)
	}

	fmt.Printf("%s  %s (%s)  rev %s  %s\n", detail.BomNumber, detail.ProductName,
		detail.SkuCode, detail.Revision, detail.Status)
	if detail.Description != "" {
		fmt.Println(detail.Description)
	}
	fmt.Printf("total %s  material %s  labor %s  overhead %s  variance %s\n\n",
		detail.TotalCost.StringFixed(2), detail.MaterialCost.StringFixed(2),
		detail.LaborCost.StringFixed(2), detail.OverheadCost.StringFixed(2),
		detail.CostVariance.StringFixed(2))

	t := newTable(table.Row{"#", "Part", "Name", "Qty", "Unit", "Unit Cost", "Extended", "On Hand", "Short"})
	for _, line := range detail.Lines {
		t.AppendRow(table.Row{
			line.LineNumber, line.PartNumber, line.PartName,
			line.Quantity.String(), line.Unit,
			line.UnitCost.StringFixed(2), line.ExtendedCost.StringFixed(2),
			line.OnHand.String(), line.Shortage.String(),
		})
	}
	t.Render()

	if detail.ShortageCount > 0 {
		fmt.Printf("%d line(s) short of stock\n", detail.ShortageCount)
	}
	return nil
}

func runBomReadiness(cmd *cobra.Command, args []string) error {
	client, _, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	readiness, err := client.FetchBomReadiness(ctx, args[0])
	if err != nil {
		return fmt.Errorf("fetch readiness: %w", err)
	}

	verdict := "NOT READY"
	if readiness.Ready {
		verdict = "READY"
	}
	fmt.Printf("%s: %s, %d buildable unit(s)\n", readiness.BomID, verdict, readiness.BuildableUnits)
	if readiness.Metadata.Warehouse != "" {
		fmt.Printf("warehouse: %s\n", readiness.Metadata.Warehouse)
	}

	if len(readiness.Metadata.BottleneckParts) > 0 {
		t := newTable(table.Row{"Part", "Name", "Required", "On Hand", "Shortfall"})
		for _, part := range readiness.Metadata.BottleneckParts {
			t.AppendRow(table.Row{
				part.PartNumber, part.PartName,
				part.Required.String(), part.OnHand.String(), part.Shortfall.String(),
			})
		}
		t.Render()
	}

	if !readiness.Ready {
		return fmt.Errorf("bom %s is not ready for production", readiness.BomID)
	}
	return nil
}
