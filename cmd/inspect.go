package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/Rana718/nitrix/internal/archive"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <archive.zip>",
	Short: "List the files inside a project archive",
	Long: `
List the entries of a project archive produced by 'nitrix project', with
their sizes. Use --show to print one file's content.

Examples:
  nitrix inspect react-light-nitrix-project.zip
  nitrix inspect react-light-nitrix-project.zip --show src/App.tsx`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		show, _ := cmd.Flags().GetString("show")
		return runInspect(cmd.OutOrStdout(), args[0], show)
	},
}

func runInspect(w io.Writer, path, show string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read archive: %w", err)
	}

	if show != "" {
		files, err := archive.Extract(data)
		if err != nil {
			return err
		}
		content, ok := files[show]
		if !ok {
			return fmt.Errorf("%s not found in %s", show, path)
		}
		_, err = io.WriteString(w, content)
		return err
	}

	entries, err := archive.List(data)
	if err != nil {
		return err
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(table.Row{"file", "size", "compressed"})

	var total uint64
	for _, e := range entries {
		tw.AppendRow(table.Row{e.Name, e.Size, e.CompressedSize})
		total += e.Size
	}
	tw.AppendFooter(table.Row{fmt.Sprintf("%d files", len(entries)), total, ""})
	tw.Render()
	return nil
}

func init() {
	inspectCmd.Flags().String("show", "", "print the content of one archive entry")
}
