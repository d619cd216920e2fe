// Package export writes a pwtext document in other formats.
//
// Every format carries the flattened view: keys are the slash-joined paths and
// values are the stored strings, in ascending key order where the format has an
// order. The text format writes the document back in its own syntax.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/PascalWirtz/pwtext"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
)

// Format names an output format.
type Format string

// Supported formats.
const (
	FormatPairs Format = "pairs"
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCBOR  Format = "cbor"
)

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("unknown format")

// encMode is the CBOR encoder configured with Core Deterministic Encoding,
// so the same document always produces identical bytes.
//
//nolint:gochecknoglobals
var encMode cbor.EncMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("export: CBOR encoder initialization failed: " + err.Error())
	}
}

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{FormatPairs, FormatText, FormatJSON, FormatYAML, FormatCBOR}
}

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(name string) (Format, error) {
	for _, format := range Formats() {
		if strings.EqualFold(name, string(format)) {
			return format, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// ContentType returns the media type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatCBOR:
		return "application/cbor"
	case FormatPairs, FormatText:
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// Encode writes doc to w in the given format.
func Encode(w io.Writer, doc *pwtext.Document, format Format) error {
	switch format {
	case FormatPairs:
		return encodePairs(w, doc)
	case FormatText:
		return pwtext.Encode(w, doc) //nolint:wrapcheck
	case FormatJSON:
		return encodeJSON(w, doc)
	case FormatYAML:
		return encodeYAML(w, doc)
	case FormatCBOR:
		return encodeCBOR(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// encodePairs writes one "path => value" line per entry in ascending key order.
func encodePairs(w io.Writer, doc *pwtext.Document) error {
	return WritePairs(w, doc.All())
}

// WritePairs writes one "path => value" line per entry, in the order entries
// yields them. Use it with Document.Backward for descending output.
func WritePairs(w io.Writer, entries iter.Seq2[string, string]) error {
	for path, value := range entries {
		_, err := fmt.Fprintf(w, "%s => %s\n", path, value)
		if err != nil {
			return fmt.Errorf("write pairs: %w", err)
		}
	}

	return nil
}

func encodeJSON(w io.Writer, doc *pwtext.Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(doc.Map())
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

func encodeYAML(w io.Writer, doc *pwtext.Document) error {
	items := make(yaml.MapSlice, 0, doc.Len())

	for path, value := range doc.All() {
		items = append(items, yaml.MapItem{Key: path, Value: value})
	}

	out, err := yaml.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}

	return nil
}

func encodeCBOR(w io.Writer, doc *pwtext.Document) error {
	out, err := encMode.Marshal(doc.Map())
	if err != nil {
		return fmt.Errorf("encode cbor: %w", err)
	}

	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("write cbor: %w", err)
	}

	return nil
}
