// Package cli implements the pwtext command line tool.
package cli

import (
	"log/slog"

	"github.com/PascalWirtz/pwtext"
	"github.com/PascalWirtz/pwtext/config"
	filefetcher "github.com/PascalWirtz/pwtext/config/fetcher/file"
	readerfetcher "github.com/PascalWirtz/pwtext/config/fetcher/reader"
	"github.com/PascalWirtz/pwtext/logging"

	"github.com/spf13/cobra"
)

// DefaultFile is the document read when --file is not given.
const DefaultFile = "config.txt"

// stdinFile is the --file value selecting standard input.
const stdinFile = "-"

type rootOptions struct {
	file      string
	maxSize   int64
	delimiter delimiterFlag
	logLevel  string
	logFormat string
}

// parseOptions returns the pwtext options selected by the flags.
func (o *rootOptions) parseOptions() []pwtext.Option {
	if !o.delimiter.set {
		return nil
	}

	return []pwtext.Option{pwtext.WithDelimiter(o.delimiter.value)}
}

// loadDocument reads and parses the document named by --file.
func (o *rootOptions) loadDocument(cmd *cobra.Command) (*pwtext.Document, error) {
	var source config.DataFetcher

	if o.file == stdinFile {
		fetcher, err := readerfetcher.NewFetcher(cmd.InOrStdin(), o.maxSize)()
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		source = fetcher
	} else {
		fetcher, err := filefetcher.NewFetcher(o.file, filefetcher.WithMaxSize(o.maxSize))()
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		source = fetcher
	}

	return config.DocumentProvider(o.parseOptions()...)(source) //nolint:wrapcheck
}

// NewRootCommand builds the pwtext command tree. Without a subcommand it
// behaves like dump.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	dump := &dumpOptions{root: opts}

	cmd := &cobra.Command{
		Use:   "pwtext",
		Short: "Read hierarchical pwtext configuration files",
		Long: "pwtext flattens a configuration file of nested containers and\n" +
			"`key value;` statements into slash-joined paths, and prints,\n" +
			"queries, converts or serves the result.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger := logging.NewLogger(logging.LoggerConfig{
				Level:  opts.logLevel,
				Format: opts.logFormat,
			}, cmd.ErrOrStderr())
			slog.SetDefault(logger)
		},
		RunE: dump.run,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", DefaultFile, `document to read, "-" for standard input`)
	flags.Int64Var(&opts.maxSize, "max-size", 0, "reject documents larger than this many bytes (0 disables the limit)")
	flags.VarP(&opts.delimiter, "delimiter", "d", "character separating keys from values (default whitespace)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", logging.FormatText, "log format: json or text")

	cmd.Flags().BoolVarP(&dump.reverse, "reverse", "r", false, "print entries in descending key order")

	cmd.AddCommand(
		newDumpCommand(opts),
		newGetCommand(opts),
		newExportCommand(opts),
		newServeCommand(opts),
		newVersionCommand(),
	)

	return cmd
}
