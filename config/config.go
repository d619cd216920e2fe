package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/PascalWirtz/pwtext"
)

// ErrFetch is returned when the DataFetcher fails.
var ErrFetch = errors.New("reading data error")

// ErrParse is returned when the Parser fails.
var ErrParse = errors.New("parsing error")

// ErrValidate is returned when the parsed config fails validation.
var ErrValidate = errors.New("validating error")

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter selects a container within the document using slash-joined
// container names, e.g. "database/connection". The empty path selects the whole
// document. See config/parser/text for the pwtext implementation.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that reads, parses, sets defaults, and validates configuration data.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrValidate, err)
			}
		}

		return target, nil
	}
}

// DocumentProvider returns a function that reads configuration text and parses it
// into a document. Parsing never fails; a document without entries is returned
// as is and logged as a warning.
func DocumentProvider(opts ...pwtext.Option) func(DataFetcher) (*pwtext.Document, error) {
	return func(dataSourcer DataFetcher) (*pwtext.Document, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}

		doc := pwtext.New(string(data), opts...)

		if !doc.Valid() {
			slog.Warn("document has no entries", slog.Int("bytes", len(data)))
		} else {
			slog.Debug("document parsed", slog.Int("bytes", len(data)), slog.Int("entries", doc.Len()))
		}

		return doc, nil
	}
}
