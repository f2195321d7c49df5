package subcmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/forgeline/forgetop/internal/config"
	"github.com/forgeline/forgetop/internal/forgeline"
)

// cliTimeout bounds every one-shot command; the interactive UI manages its
// own lifecycle instead.
const cliTimeout = 15 * time.Second

var listFlags struct {
	page   int
	limit  int
	search string
	sortBy string
	desc   bool
}

// addListFlags attaches the shared pagination/filter flags to a list
// subcommand.
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&listFlags.page, "page", 1, "page to fetch")
	cmd.Flags().IntVar(&listFlags.limit, "limit", 0, "records per page (0 uses the configured default)")
	cmd.Flags().StringVar(&listFlags.search, "search", "", "search filter")
	cmd.Flags().StringVar(&listFlags.sortBy, "sort", "", "sort field")
	cmd.Flags().BoolVar(&listFlags.desc, "desc", false, "sort descending")
}

// newClient loads configuration and builds a Forgeline client plus a bounded
// context for a one-shot command.
func newClient() (*forgeline.Client, forgeline.ListQuery, context.Context, context.CancelFunc, error) {
	cfg, err := config.Load(rootFlags.configPath)
	if err != nil {
		return nil, forgeline.ListQuery{}, nil, nil, fmt.Errorf("load forgetop config: %w", err)
	}

	client, err := forgeline.NewClient(cfg.APIBind)
	if err != nil {
		return nil, forgeline.ListQuery{}, nil, nil, fmt.Errorf("init forgeline client: %w", err)
	}

	limit := listFlags.limit
	if limit <= 0 {
		limit = cfg.PageLimit
	}
	query := forgeline.ListQuery{
		Page:   listFlags.page,
		Limit:  limit,
		Search: listFlags.search,
		SortBy: listFlags.sortBy,
	}
	if listFlags.desc {
		query.SortDir = forgeline.SortDesc
	}

	ctx, cancel := context.WithTimeout(context.Background(), cliTimeout)
	return client, query, ctx, cancel, nil
}

// newTable builds a stdout table writer with the shared style.
func newTable(header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}

// renderPageFooter prints the pagination trailer under a table.
func renderPageFooter(page *forgeline.Pagination) {
	if page == nil {
		return
	}
	fmt.Printf("page %d/%d (%d records)\n", page.Page, page.TotalPagesOrFallback(), page.TotalRecords)
}
