package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PascalWirtz/pwtext"

	"github.com/spf13/cobra"
)

// Errors returned by the get command.
var (
	ErrKeyNotFound = errors.New("key not found")
	ErrConversion  = errors.New("value does not convert")
	ErrUnknownType = errors.New("unknown type")
)

// valueTypes lists the --type names accepted by get.
//
//nolint:gochecknoglobals
var valueTypes = []string{"string", "int", "uint", "float", "bool"}

type getOptions struct {
	root      *rootOptions
	valueType string
}

func newGetCommand(root *rootOptions) *cobra.Command {
	opts := &getOptions{root: root}

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value stored under a path",
		Long: "Print the value stored under KEY, a slash-joined path such as\n" +
			"container1/subtag1. With --type the value is converted first and\n" +
			"printed in canonical form.",
		Args: cobra.ExactArgs(1),
		RunE: opts.run,
	}

	cmd.Flags().StringVarP(&opts.valueType, "type", "t", "string",
		"convert the value to one of: "+strings.Join(valueTypes, ", "))

	return cmd
}

func (o *getOptions) run(cmd *cobra.Command, args []string) error {
	key := args[0]

	doc, err := o.root.loadDocument(cmd)
	if err != nil {
		return err
	}

	if !doc.Contains(key) {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	value, err := convert(doc, key, o.valueType)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
	if err != nil {
		return fmt.Errorf("write value: %w", err)
	}

	return nil
}

func convert(doc *pwtext.Document, key, valueType string) (any, error) {
	var (
		value any
		ok    bool
	)

	switch strings.ToLower(valueType) {
	case "string", "":
		value, ok = pwtext.Lookup[string](doc, key)
	case "int":
		value, ok = pwtext.Lookup[int64](doc, key)
	case "uint":
		value, ok = pwtext.Lookup[uint64](doc, key)
	case "float":
		value, ok = pwtext.Lookup[float64](doc, key)
	case "bool":
		value, ok = pwtext.Lookup[bool](doc, key)
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownType, valueType, strings.Join(valueTypes, ", "))
	}

	if !ok {
		return nil, fmt.Errorf("%w: %q to %s", ErrConversion, doc.Value(key), valueType)
	}

	return value, nil
}
