package subcmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show Forgeline server status",
		RunE:  runStatus,
	})
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, _, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	status, err := client.FetchStatus(ctx)
	if err != nil {
		return fmt.Errorf("fetch status: %w", err)
	}

	fmt.Printf("version:      %s\n", status.Version)
	fmt.Printf("database:     %s\n", status.Database)
	fmt.Printf("open orders:  %d\n", status.OpenOrders)
	fmt.Printf("active boms:  %d\n", status.ActiveBoms)
	fmt.Printf("pending jobs: %d\n", status.PendingJobs)
	if status.MaintenanceMsg != "" {
		fmt.Printf("maintenance:  %s\n", status.MaintenanceMsg)
	}
	return nil
}
