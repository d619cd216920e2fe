package cli

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
)

// ErrInvalidDelimiter is returned for a --delimiter value that is not a single usable character.
var ErrInvalidDelimiter = errors.New("delimiter must be a single character other than ; { } \"")

// delimiterFlag is a pflag.Value holding an optional single-character delimiter.
// The empty string selects whitespace separation.
type delimiterFlag struct {
	value rune
	set   bool
}

var _ pflag.Value = (*delimiterFlag)(nil)

func (d *delimiterFlag) String() string {
	if !d.set {
		return ""
	}

	return string(d.value)
}

func (d *delimiterFlag) Set(s string) error {
	if s == "" {
		d.value, d.set = 0, false

		return nil
	}

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) || strings.ContainsRune(`;{}"`, r) {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, s)
	}

	d.value, d.set = r, true

	return nil
}

func (d *delimiterFlag) Type() string {
	return "char"
}
