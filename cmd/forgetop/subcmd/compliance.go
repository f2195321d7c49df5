package subcmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	complianceCmd := &cobra.Command{
		Use:   "compliance",
		Short: "Compliance records",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List compliance records",
		RunE:  runComplianceList,
	}
	addListFlags(listCmd)

	complianceCmd.AddCommand(listCmd)
	complianceCmd.AddCommand(&cobra.Command{
		Use:   "show <record-id>",
		Short: "Show one compliance record",
		Args:  cobra.ExactArgs(1),
		RunE:  runComplianceShow,
	})
	RootCmd.AddCommand(complianceCmd)
}

func runComplianceList(cmd *cobra.Command, args []string) error {
	client, query, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	items, page, err := client.ListComplianceRecords(ctx, query)
	if err != nil {
		return fmt.Errorf("list compliance records: %w", err)
	}

	t := newTable(table.Row{"Part", "SKU", "Kind", "Authority", "Status", "Reference", "Expires"})
	for _, rec := range items {
		t.AppendRow(table.Row{
			rec.PartNumber, rec.SkuCode, rec.Kind, rec.Authority,
			rec.Status, rec.Reference, rec.ExpiresAt,
		})
	}
	t.Render()
	renderPageFooter(page)
	return nil
}

func runComplianceShow(cmd *cobra.Command, args []string) error {
	client, _, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	rec, err := client.FetchComplianceRecord(ctx, args[0])
	if err != nil {
		return fmt.Errorf("fetch compliance record: %w", err)
	}

	fmt.Printf("part:      %s\n", rec.PartNumber)
	fmt.Printf("sku:       %s\n", rec.SkuCode)
	fmt.Printf("kind:      %s\n", rec.Kind)
	fmt.Printf("authority: %s\n", rec.Authority)
	fmt.Printf("status:    %s\n", rec.Status)
	fmt.Printf("reference: %s\n", rec.Reference)
	fmt.Printf("issued:    %s\n", rec.IssuedAt)
	fmt.Printf("expires:   %s\n", rec.ExpiresAt)
	if rec.Notes != "" {
		fmt.Printf("notes:     %s\n", rec.Notes)
	}
	return nil
}
