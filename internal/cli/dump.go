package cli

import (
	"github.com/PascalWirtz/pwtext/export"

	"github.com/spf13/cobra"
)

type dumpOptions struct {
	root    *rootOptions
	reverse bool
}

func newDumpCommand(root *rootOptions) *cobra.Command {
	opts := &dumpOptions{root: root}

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print every path => value pair",
		Long: "Print every entry of the document as a `path => value` line in\n" +
			"ascending key order. Nothing is printed for a document without entries.",
		Args: cobra.NoArgs,
		RunE: opts.run,
	}

	cmd.Flags().BoolVarP(&opts.reverse, "reverse", "r", false, "print entries in descending key order")

	return cmd
}

func (o *dumpOptions) run(cmd *cobra.Command, _ []string) error {
	doc, err := o.root.loadDocument(cmd)
	if err != nil {
		return err
	}

	if !doc.Valid() {
		return nil
	}

	if o.reverse {
		return export.WritePairs(cmd.OutOrStdout(), doc.Backward()) //nolint:wrapcheck
	}

	return export.Encode(cmd.OutOrStdout(), doc, export.FormatPairs) //nolint:wrapcheck
}
