package cmd

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/nitrix/internal/config"
	"github.com/Rana718/nitrix/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the loaded tables to a snapshot",
	Long: `
Export every table of the source, with its rows, to a snapshot file.
Supported formats: yaml (default), json, csv, sqlite

yaml and json snapshots can be used with source.provider "file", sqlite
snapshots with source.provider "sqlite".

Examples:
  nitrix export
  nitrix export --json
  nitrix export --sqlite --dir snapshots`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		format := "yaml"
		if jsonFlag, _ := cmd.Flags().GetBool("json"); jsonFlag {
			format = "json"
		} else if csvFlag, _ := cmd.Flags().GetBool("csv"); csvFlag {
			format = "csv"
		} else if sqliteOut, _ := cmd.Flags().GetBool("sqlite"); sqliteOut {
			format = "sqlite"
		}

		dir, _ := cmd.Flags().GetString("dir")
		return runExport(cmd.Context(), cfg, dir, format)
	},
}

func runExport(ctx context.Context, cfg *config.Config, dir, format string) error {
	schema, err := loadSchema(ctx, cfg)
	if err != nil {
		return err
	}

	if dir == "" {
		dir = cfg.OutDir
	}
	exportPath, err := export.PerformExport(ctx, schema, dir, format, time.Now())
	if err != nil {
		return err
	}

	color.Green("✅ Export completed: %s", exportPath)
	return nil
}

func init() {
	exportCmd.Flags().Bool("json", false, "Export as JSON")
	exportCmd.Flags().Bool("csv", false, "Export as one CSV file per table")
	exportCmd.Flags().Bool("sqlite", false, "Export as a SQLite database")
	exportCmd.Flags().String("dir", "", "export directory (default is out_dir)")
}
