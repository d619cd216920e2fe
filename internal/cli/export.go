package cli

import (
	"fmt"

	"github.com/PascalWirtz/pwtext/export"

	"github.com/spf13/cobra"
)

type exportOptions struct {
	root   *rootOptions
	format string
}

func newExportCommand(root *rootOptions) *cobra.Command {
	opts := &exportOptions{root: root}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the document in another format",
		Args:  cobra.NoArgs,
		RunE:  opts.run,
	}

	cmd.Flags().StringVarP(&opts.format, "format", "o", string(export.FormatJSON),
		fmt.Sprintf("output format, one of %v", export.Formats()))

	return cmd
}

func (o *exportOptions) run(cmd *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(o.format)
	if err != nil {
		return err //nolint:wrapcheck
	}

	doc, err := o.root.loadDocument(cmd)
	if err != nil {
		return err
	}

	return export.Encode(cmd.OutOrStdout(), doc, format) //nolint:wrapcheck
}
