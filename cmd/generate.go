package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/nitrix/internal/config"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate table code for every table",
	Long: `
Generate one code file holding a table view for every table of the source,
in the selected format and theme. The file is named after the format:
  html-code-nitrix.html, react-code-nitrix.tsx, react-native-code-nitrix.tsx

Examples:
  nitrix generate --source app.db
  nitrix generate --format react-native --theme dark
  nitrix generate --stdout`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		toStdout, _ := cmd.Flags().GetBool("stdout")
		force, _ := cmd.Flags().GetBool("force")

		return runGenerate(cmd.Context(), cmd.OutOrStdout(), cfg, generateOptions{
			out:    out,
			stdout: toStdout,
			force:  force,
		})
	},
}

type generateOptions struct {
	out    string
	stdout bool
	force  bool
}

func runGenerate(ctx context.Context, w io.Writer, cfg *config.Config, opts generateOptions) error {
	schema, err := loadSchema(ctx, cfg)
	if err != nil {
		return err
	}
	sess, err := newSession(cfg, schema)
	if err != nil {
		return err
	}

	code, err := sess.GenerateCode()
	if err != nil {
		return err
	}

	if opts.stdout {
		_, err := fmt.Fprintln(w, code)
		return err
	}

	path := outputPath(cfg, opts.out, sess.CodeFileName())
	if err := writeOutput(path, []byte(code), opts.force); err != nil {
		return err
	}

	format, theme := sess.Selection()
	color.Green("✅ Generated %s code (%s theme) for %d tables: %s", format.Label(), theme, len(schema.Tables), path)
	return nil
}

func init() {
	generateCmd.Flags().StringP("out", "o", "", "output file (default is <out_dir>/<format>-code-nitrix.<ext>)")
	generateCmd.Flags().Bool("stdout", false, "print the generated code instead of writing a file")
}
