package pwtext

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	terminator     = ';'
	openContainer  = '{'
	closeContainer = '}'
	quote          = '"'
)

// NoDelimiter selects whitespace-delimited mode.
const NoDelimiter rune = 0

type options struct {
	delimiter rune
}

// Option configures parsing.
type Option func(*options)

// WithDelimiter sets a custom field delimiter. In delimiter mode the delimiter
// separates an identifier from what follows and unquoted whitespace is skipped.
// NoDelimiter restores whitespace mode.
func WithDelimiter(delimiter rune) Option {
	return func(opts *options) {
		opts.delimiter = delimiter
	}
}

func applyOptions(opts []Option) options {
	var o options

	for _, apply := range opts {
		apply(&o)
	}

	return o
}

// Parse flattens text into a mapping from key path to value.
// It never fails; see the package documentation for how malformed input degrades.
func Parse(text string, opts ...Option) map[string]string {
	values := make(map[string]string)
	parseInto(text, applyOptions(opts).delimiter, values)

	return values
}

// parser holds the state of one pass over the input.
type parser struct {
	delimiter rune
	path      pathStack
	buffer    strings.Builder
	quoted    bool
	values    map[string]string
}

func parseInto(text string, delimiter rune, values map[string]string) {
	clear(values)

	p := &parser{
		delimiter: delimiter,
		values:    values,
	}

	for i := 0; i < len(text); {
		c, size := utf8.DecodeRuneInString(text[i:])
		p.step(c, text[i:i+size])
		i += size
	}
}

// step consumes one character. raw is its encoding in the input, which is
// what gets buffered, so bytes that are not valid UTF-8 pass through unchanged.
func (p *parser) step(c rune, raw string) {
	if c == utf8.RuneError && len(raw) == 1 {
		p.buffer.WriteString(raw)

		return
	}

	switch c {
	case terminator:
		p.values[p.path.String()] = statementValue(p.buffer.String())
		p.quoted = false
		p.buffer.Reset()
		p.path.pop()

		return
	case closeContainer:
		p.path.pop()
		p.buffer.Reset()

		return
	case openContainer:
		p.stepUp()

		return
	case quote:
		p.quoted = true
	default:
		if p.separate(c) {
			return
		}
	}

	p.buffer.WriteString(raw)
}

// separate handles delimiter and whitespace characters and reports whether c was consumed.
func (p *parser) separate(c rune) bool {
	space := unicode.IsSpace(c) && !p.quoted

	if p.delimiter != NoDelimiter {
		if c == p.delimiter {
			p.stepUp()

			return true
		}

		return space
	}

	if space {
		p.stepUp()

		return true
	}

	return false
}

// stepUp pushes the buffered token as a path segment and clears the buffer.
func (p *parser) stepUp() {
	p.path.push(strings.TrimSpace(p.buffer.String()))
	p.buffer.Reset()
}

// statementValue strips the quotes of a quoted token. A quoted token that is not
// closed, or is too short to hold anything between its quotes, yields "".
func statementValue(token string) string {
	trimmed := strings.TrimSpace(token)

	if !strings.HasPrefix(trimmed, string(quote)) {
		return token
	}

	if len(trimmed) > 2 && strings.HasSuffix(trimmed, string(quote)) {
		return trimmed[1 : len(trimmed)-1]
	}

	return ""
}
