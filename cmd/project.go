package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/nitrix/internal/artifact"
	"github.com/Rana718/nitrix/internal/config"
	"github.com/Rana718/nitrix/internal/types"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Build a starter project archive",
	Long: `
Assemble a complete starter project for the selected format and theme and
pack it into a zip archive named <format>-<theme>-nitrix-project.zip.

  html          index.html with every table
  react         Vite + Tailwind app, one component per table
  react-native  Expo app rendering every table

Examples:
  nitrix project --format react --theme dark
  nitrix project --format html --single
  nitrix project --upload`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		single, _ := cmd.Flags().GetBool("single")
		upload, _ := cmd.Flags().GetBool("upload")
		force, _ := cmd.Flags().GetBool("force")

		return runProject(cmd.Context(), cfg, projectOptions{
			out:    out,
			single: single,
			upload: upload,
			force:  force,
		})
	},
}

type projectOptions struct {
	out    string
	single bool
	upload bool
	force  bool
}

func runProject(ctx context.Context, cfg *config.Config, opts projectOptions) error {
	schema, err := loadSchema(ctx, cfg)
	if err != nil {
		return err
	}
	sess, err := newSession(cfg, schema)
	if err != nil {
		return err
	}

	project, data, err := sess.BuildProject()
	if err != nil {
		return err
	}

	if opts.single {
		name, content, ok := project.SingleFile()
		if !ok {
			return fmt.Errorf("--single is only available for the %s format", types.FormatHTML)
		}
		path := outputPath(cfg, opts.out, name)
		if err := writeOutput(path, []byte(content), opts.force); err != nil {
			return err
		}
		color.Green("✅ Single-file project written: %s", path)
		return nil
	}

	path := outputPath(cfg, opts.out, sess.ArchiveName())
	if err := writeOutput(path, data, opts.force); err != nil {
		return err
	}

	color.Green("✅ Project archive written: %s", path)
	fmt.Printf("📦 %d files, entry point %s\n", len(project.Files), project.EntryFile())

	if opts.upload {
		store, err := cfg.NewArtifactStore()
		if err != nil {
			return fmt.Errorf("failed to configure artifact store: %w", err)
		}
		url, err := artifact.Publish(ctx, store, sess.ArchiveName(), data, time.Now())
		if err != nil {
			return err
		}
		color.Cyan("☁️  Uploaded: %s", url)
	}
	return nil
}

func init() {
	projectCmd.Flags().StringP("out", "o", "", "output file (default is <out_dir>/<format>-<theme>-nitrix-project.zip)")
	projectCmd.Flags().Bool("single", false, "write the bare index.html instead of an archive (html only)")
	projectCmd.Flags().Bool("upload", false, "publish the archive to the configured artifact store")
}
