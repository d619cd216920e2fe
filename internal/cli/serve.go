package cli

import (
	"strings"

	"github.com/PascalWirtz/pwtext"
	"github.com/PascalWirtz/pwtext/app"
	"github.com/PascalWirtz/pwtext/config"
	readerfetcher "github.com/PascalWirtz/pwtext/config/fetcher/reader"
	textparser "github.com/PascalWirtz/pwtext/config/parser/text"
	"github.com/PascalWirtz/pwtext/listener"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const (
	// listenerName names the HTTP listener module started by serve.
	listenerName = "pwtext"

	// listenerSection is the container of the served document holding listener settings.
	listenerSection = "listener"
)

type serveOptions struct {
	root    *rootOptions
	address string
}

func newServeCommand(root *rootOptions) *cobra.Command {
	opts := &serveOptions{root: root}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the document over HTTP",
		Long: "Serve the document read-only over HTTP until interrupted:\n" +
			"  GET /values[?format=F]  all entries\n" +
			"  GET /values/{path}      one entry or container\n" +
			"  GET /healthz            200 when the document has entries\n\n" +
			"A `listener` container in the document may set address and\n" +
			"read_header_timeout; --address overrides the address.",
		Args: cobra.NoArgs,
		RunE: opts.run,
	}

	cmd.Flags().StringVarP(&opts.address, "address", "a", listener.DefaultAddress, "address to listen on")

	return cmd
}

func (o *serveOptions) run(cmd *cobra.Command, _ []string) error {
	doc, err := o.root.loadDocument(cmd)
	if err != nil {
		return err
	}

	cfg, err := o.listenerConfig(cmd, doc)
	if err != nil {
		return err
	}

	application := app.NewApp(
		app.WithLogLevel(o.root.logLevel),
		app.WithLogFormat(o.root.logFormat),
		app.WithLogOutput(cmd.ErrOrStderr()),
		app.WithModules(fx.Supply(doc)),
		app.WithDocumentListener(listenerName,
			listener.WithAddress(cfg.Address),
			listener.WithReadHeaderTimeout(cfg.ReadHeaderTimeout),
		),
	)

	err = application.Err()
	if err != nil {
		return err //nolint:wrapcheck
	}

	application.Run()

	return nil
}

// listenerConfig decodes the listener container of doc, if there is one, and
// applies the --address flag on top when it was given explicitly.
func (o *serveOptions) listenerConfig(cmd *cobra.Command, doc *pwtext.Document) (listener.Config, error) {
	cfg := listener.Config{Address: o.address}

	if _, ok := doc.Section(listenerSection); ok {
		fetcher, err := readerfetcher.NewFetcher(strings.NewReader(doc.Raw()), 0)()
		if err != nil {
			return listener.Config{}, err //nolint:wrapcheck
		}

		decoded, err := config.Provider(&listener.Config{}, listenerSection)(
			textparser.NewParser(o.root.parseOptions()...), fetcher)
		if err != nil {
			return listener.Config{}, err //nolint:wrapcheck
		}

		cfg = *decoded

		if cmd.Flags().Changed("address") {
			cfg.Address = o.address
		}
	}

	return cfg, nil
}
