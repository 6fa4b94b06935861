package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riverfjs/linkmarkup-go"
)

var importCmd = &cobra.Command{
	Use:   "import [flags] [file]",
	Short: "Convert Markdown or HTML into label markup",
	Long: `Import keeps the links of a Markdown or HTML document, flattens everything
else to text and prints the result as label markup.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().String("from", "markdown", "input format (markdown|html)")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := prepare(cmd)
	if err != nil {
		return err
	}
	from, err := cmd.Flags().GetString("from")
	if err != nil {
		return fmt.Errorf("failed to get from flag: %w", err)
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	in, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	var segments []linkmarkup.Segment
	switch from {
	case "markdown", "md":
		segments = linkmarkup.FromMarkdown(in.Text)
	case "html":
		segments = linkmarkup.FromHTML(in.Text)
	default:
		return fmt.Errorf("unknown input format: %s", from)
	}

	if cfg.Mnemonics {
		segments = linkmarkup.EscapeMnemonics(segments)
	}

	markup, err := linkmarkup.Format(segments)
	if err != nil {
		return fmt.Errorf("%s: %w", in.Name, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), markup)
	return nil
}
