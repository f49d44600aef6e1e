package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Rana718/nitrix/internal/config"
	"github.com/Rana718/nitrix/internal/preview"
	"github.com/Rana718/nitrix/internal/types"
)

var previewCmd = &cobra.Command{
	Use:   "preview [table...]",
	Short: "Show the first rows of each table",
	Long: `
Print the first rows of every table (or only the named ones) as console
tables. NULL values are shown as NULL.

Examples:
  nitrix preview
  nitrix preview users orders --limit 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		if limit <= 0 {
			limit = cfg.PreviewLimit
		}

		return runPreview(cmd.Context(), cmd.OutOrStdout(), cfg, args, limit)
	},
}

func runPreview(ctx context.Context, w io.Writer, cfg *config.Config, names []string, limit int) error {
	schema, err := loadSchema(ctx, cfg)
	if err != nil {
		return err
	}

	tables, err := selectTables(schema, names)
	if err != nil {
		return err
	}
	return preview.RenderAll(w, tables, limit)
}

// selectTables returns the named tables in schema order, or all of them when
// names is empty.
func selectTables(schema *types.Schema, names []string) ([]types.Table, error) {
	if len(names) == 0 {
		return schema.Tables, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	var tables []types.Table
	for _, t := range schema.Tables {
		if wanted[t.Name] {
			tables = append(tables, t)
			delete(wanted, t.Name)
		}
	}
	for _, name := range names {
		if wanted[name] {
			return nil, fmt.Errorf("table %q not found", name)
		}
	}
	return tables, nil
}

func init() {
	previewCmd.Flags().IntP("limit", "n", 0, "rows per table (default is preview_limit from config)")
}
