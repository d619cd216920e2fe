package text

import (
	"errors"
	"fmt"

	"github.com/PascalWirtz/pwtext"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrNoEntries is returned when the input holds no complete statement.
var ErrNoEntries = errors.New("no entries")

// ErrPathNotFound is returned when no entry lies below the specified path.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser interface for pwtext data.
type Parser struct {
	opts []pwtext.Option
}

// NewParser creates a new pwtext parser. Options are passed on to pwtext.New,
// e.g. pwtext.WithDelimiter for delimiter-mode documents.
func NewParser(opts ...pwtext.Option) *Parser {
	return &Parser{opts: opts}
}

// Parse flattens data and decodes the container at path into target.
// Empty path decodes the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	doc := pwtext.New(string(data), p.opts...)
	if !doc.Valid() {
		return ErrNoEntries
	}

	section, ok := doc.Section(path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	err := pwtext.Decode(section, target)
	if err != nil {
		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}
