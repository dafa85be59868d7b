package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"bookcatalog/internal/app"
	"bookcatalog/internal/book"
)

func newEnrichCommand(ctx *commandContext) *cobra.Command {
	var (
		workers   int
		overwrite bool
		failed    bool
	)

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Fill missing publication years from Open Library and print a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *ctx.cfg
			if cmd.Flags().Changed("workers") {
				cfg.EnrichWorkers = workers
			}
			if cmd.Flags().Changed("overwrite") {
				cfg.EnrichOverwriteExisting = overwrite
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			a, err := app.New(cmd.Context(), &cfg, ctx.logger)
			if err != nil {
				return err
			}
			defer a.Close()

			report, runErr := a.Service.EnrichAllBooksWithYear(cmd.Context())
			out := cmd.OutOrStdout()
			if len(report.Results) > 0 {
				fmt.Fprintln(out, renderReport(report, failed))
			}
			fmt.Fprintf(out, "updated %d, skipped %d, failed %d in %s\n",
				report.Updated, report.Skipped, report.Failed, report.Duration.Round(time.Millisecond))
			return runErr
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 1, "Concurrent Open Library lookups")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Look up books that already have a year")
	cmd.Flags().BoolVar(&failed, "failed-only", false, "Only list books that could not be enriched")
	return cmd
}

// renderReport lays out one row per book. failedOnly keeps only FAILED rows.
func renderReport(report book.EnrichReport, failedOnly bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Book", "Work", "Outcome", "Year", "Fallback", "Error"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Book", Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Name: "Year", Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Name: "Error", WidthMax: 60},
	})

	for _, res := range report.Results {
		if failedOnly && res.Outcome != book.OutcomeFailed {
			continue
		}
		year := ""
		if res.Year != nil {
			year = strconv.Itoa(*res.Year)
		}
		errText := ""
		if res.Err != nil {
			errText = res.Err.Error()
		}
		tw.AppendRow(table.Row{res.BookID, res.WorkID, string(res.Outcome), year, res.FallbackID, errText})
	}
	return tw.Render()
}
