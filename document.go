package pwtext

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Document is a parsed configuration text: the raw input, the delimiter it was
// parsed with, and the flattened values.
//
// The zero value is an empty, invalid document ready for use.
// A Document is not safe for concurrent mutation.
type Document struct {
	raw       string
	delimiter rune
	values    map[string]string
}

// New parses text and returns the resulting document.
func New(text string, opts ...Option) *Document {
	o := applyOptions(opts)

	doc := &Document{
		raw:       text,
		delimiter: o.delimiter,
		values:    make(map[string]string),
	}

	parseInto(text, o.delimiter, doc.values)

	return doc
}

// Raw returns the text the document was parsed from.
func (d *Document) Raw() string {
	return d.raw
}

// Delimiter returns the custom delimiter and whether one was configured.
func (d *Document) Delimiter() (rune, bool) {
	return d.delimiter, d.delimiter != NoDelimiter
}

// Valid reports whether the document was built from non-empty text and holds at least one entry.
func (d *Document) Valid() bool {
	return d.raw != "" && len(d.values) != 0
}

// Value returns the value stored under key, or "" if the key is absent.
func (d *Document) Value(key string) string {
	return d.values[key]
}

// Set stores value under key, creating the entry if it is absent.
func (d *Document) Set(key, value string) {
	if d.values == nil {
		d.values = make(map[string]string)
	}

	d.values[key] = value
}

// Delete removes key from the document.
func (d *Document) Delete(key string) {
	delete(d.values, key)
}

// Contains reports whether key is present.
func (d *Document) Contains(key string) bool {
	_, ok := d.values[key]

	return ok
}

// Len returns the number of entries.
func (d *Document) Len() int {
	return len(d.values)
}

// Keys returns all keys in ascending order.
func (d *Document) Keys() []string {
	return slices.Sorted(maps.Keys(d.values))
}

// All iterates over the entries in ascending key order.
func (d *Document) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, key := range d.Keys() {
			if !yield(key, d.values[key]) {
				return
			}
		}
	}
}

// Backward iterates over the entries in descending key order.
func (d *Document) Backward() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		keys := d.Keys()

		for i := len(keys) - 1; i >= 0; i-- {
			if !yield(keys[i], d.values[keys[i]]) {
				return
			}
		}
	}
}

// Map returns a copy of the values.
func (d *Document) Map() map[string]string {
	if d.values == nil {
		return make(map[string]string)
	}

	return maps.Clone(d.values)
}

// Clone returns an independent deep copy of d.
func (d *Document) Clone() *Document {
	return &Document{
		raw:       d.raw,
		delimiter: d.delimiter,
		values:    d.Map(),
	}
}

// Take moves the state of d into a new document and leaves d empty.
func (d *Document) Take() *Document {
	moved := &Document{
		raw:       d.raw,
		delimiter: d.delimiter,
		values:    d.values,
	}

	*d = Document{}

	return moved
}

// Equal reports whether d and other hold the same entries.
// The raw text and delimiter are not compared.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}

	return maps.Equal(d.values, other.values)
}

// Section returns the entries below path with the path prefix stripped.
// The empty path selects the whole document. The second result is false when
// no entry lies below path.
func (d *Document) Section(path string) (*Document, bool) {
	path = strings.Trim(path, PathSeparator)
	if path == "" {
		return d.Clone(), d.Len() > 0
	}

	prefix := path + PathSeparator
	section := &Document{
		raw:       d.raw,
		delimiter: d.delimiter,
		values:    make(map[string]string),
	}

	for key, value := range d.values {
		if rest, ok := strings.CutPrefix(key, prefix); ok {
			section.values[rest] = value
		}
	}

	return section, len(section.values) > 0
}
