package pwtext

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// ErrUnencodable is returned when a document holds a key or value the text format cannot express.
var ErrUnencodable = errors.New("document cannot be encoded")

// Marshal returns the text form of d. See Encode.
func Marshal(d *Document) ([]byte, error) {
	var buf bytes.Buffer

	err := Encode(&buf, d)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Encode writes d in the text format, one statement per line, with containers
// indented by tabs and every value quoted. Parsing the output with the same
// delimiter yields a document equal to d.
//
// Keys with empty segments, segments containing whitespace, quotes, braces,
// the terminator or the delimiter, and values containing braces, the
// terminator or the delimiter cannot be expressed and yield ErrUnencodable.
func Encode(w io.Writer, d *Document) error {
	enc := &encoder{separator: " "}

	if delimiter, ok := d.Delimiter(); ok {
		if strings.ContainsRune(`;{}"`, delimiter) {
			return fmt.Errorf("%w: delimiter %q", ErrUnencodable, delimiter)
		}

		enc.separator = string(delimiter)
		enc.delimiter = delimiter
	}

	for key, value := range d.All() {
		err := enc.entry(key, value)
		if err != nil {
			return err
		}
	}

	enc.closeTo(0)

	_, err := w.Write(enc.buf.Bytes())
	if err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	return nil
}

type encoder struct {
	buf       bytes.Buffer
	separator string
	delimiter rune
	open      []string
}

func (e *encoder) entry(key, value string) error {
	if strings.ContainsAny(value, `;{}`) || (e.delimiter != NoDelimiter && strings.ContainsRune(value, e.delimiter)) {
		return fmt.Errorf("%w: value of %q", ErrUnencodable, key)
	}

	segments := SplitPath(key)
	for _, segment := range segments {
		if !e.validSegment(segment) {
			return fmt.Errorf("%w: key %q", ErrUnencodable, key)
		}
	}

	if len(segments) == 0 {
		e.closeTo(0)
		e.buf.WriteString(`"` + value + `";` + "\n")

		return nil
	}

	containers := segments[:len(segments)-1]

	common := 0
	for common < len(e.open) && common < len(containers) && e.open[common] == containers[common] {
		common++
	}

	e.closeTo(common)

	for _, name := range containers[common:] {
		e.indent()
		e.buf.WriteString(name + " {\n")
		e.open = append(e.open, name)
	}

	e.indent()
	e.buf.WriteString(segments[len(segments)-1] + e.separator + `"` + value + `";` + "\n")

	return nil
}

func (e *encoder) closeTo(depth int) {
	for len(e.open) > depth {
		e.open = e.open[:len(e.open)-1]
		e.indent()
		e.buf.WriteString("}\n")
	}
}

func (e *encoder) indent() {
	e.buf.WriteString(strings.Repeat("\t", len(e.open)))
}

func (e *encoder) validSegment(segment string) bool {
	if segment == "" {
		return false
	}

	for _, c := range segment {
		if unicode.IsSpace(c) || strings.ContainsRune(`;{}"`, c) || (e.delimiter != NoDelimiter && c == e.delimiter) {
			return false
		}
	}

	return true
}
