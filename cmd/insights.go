package cmd

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/Rana718/nitrix/internal/config"
	"github.com/Rana718/nitrix/internal/insights"
)

var insightsCmd = &cobra.Command{
	Use:   "insights [table...]",
	Short: "Show per-column null and distinct value statistics",
	Long: `
Analyze every table (or only the named ones): row count, and for each column
its declared type, nullability, share of NULL values and number of distinct
non-NULL values.

Examples:
  nitrix insights
  nitrix insights orders --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		return runInsights(cmd.Context(), cmd.OutOrStdout(), cfg, args, asJSON)
	},
}

func runInsights(ctx context.Context, w io.Writer, cfg *config.Config, names []string, asJSON bool) error {
	schema, err := loadSchema(ctx, cfg)
	if err != nil {
		return err
	}

	tables, err := selectTables(schema, names)
	if err != nil {
		return err
	}

	analyses := insights.Analyze(tables)
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(analyses)
	}
	return insights.Render(w, analyses)
}

func init() {
	insightsCmd.Flags().Bool("json", false, "print the analysis as JSON")
}
