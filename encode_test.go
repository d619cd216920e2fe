package pwtext_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/PascalWirtz/pwtext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_Sample(t *testing.T) {
	t.Parallel()

	doc := pwtext.New(sample)

	out, err := pwtext.Marshal(doc)

	require.NoError(t, err)
	assert.Equal(t, `container1 {
	subcontainer1 {
		subsubtag1 "subsubvalue1";
	}
	subtag1 "subvalue1";
	subtag2 "10";
	subtag3 "1.5";
}
tag1 "value1";
tag2 "10";
tag3 "1.5";
`, string(out))

	assert.True(t, doc.Equal(pwtext.New(string(out))))
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		doc  *pwtext.Document
	}{
		{name: "empty document", doc: pwtext.New("")},
		{name: "empty values", doc: pwtext.New(`a ""; b { c ""; }`)},
		{name: "leaf and container share a name", doc: pwtext.New(`a 1; a { b 2; }`)},
		{name: "values with whitespace and quotes", doc: pwtext.New(`a "  padded  "; b "say "hi"";`)},
		{name: "empty key", doc: pwtext.New(`; a 1;`)},
		{name: "delimiter mode", doc: pwtext.New("a=1;b{c=2;d{e=\"x y\";}}", pwtext.WithDelimiter('='))},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			out, err := pwtext.Marshal(testCase.doc)
			require.NoError(t, err)

			var opts []pwtext.Option
			if delimiter, ok := testCase.doc.Delimiter(); ok {
				opts = append(opts, pwtext.WithDelimiter(delimiter))
			}

			assert.Equal(t, testCase.doc.Map(), pwtext.New(string(out), opts...).Map(), "encoded:\n%s", out)
		})
	}
}

func TestMarshal_DelimiterOutput(t *testing.T) {
	t.Parallel()

	out, err := pwtext.Marshal(pwtext.New("a=1;b{c=2;}", pwtext.WithDelimiter('=')))

	require.NoError(t, err)
	assert.Equal(t, "a=\"1\";\nb {\n\tc=\"2\";\n}\n", string(out))
}

func TestEncode_Unencodable(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "terminator in value", key: "a", value: "x;y"},
		{name: "brace in value", key: "a", value: "{x}"},
		{name: "whitespace in key", key: "bad key", value: "v"},
		{name: "empty segment", key: "a//b", value: "v"},
		{name: "trailing separator", key: "a/", value: "v"},
		{name: "quote in key", key: `a"b`, value: "v"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var doc pwtext.Document

			doc.Set(testCase.key, testCase.value)

			var buf bytes.Buffer

			err := pwtext.Encode(&buf, &doc)

			require.ErrorIs(t, err, pwtext.ErrUnencodable)
			assert.Zero(t, buf.Len(), "nothing is written on failure")
		})
	}
}

func TestEncode_DelimiterInEntry(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "delimiter in key", key: "a:b", value: "v"},
		{name: "delimiter in value", key: "k", value: "x:y"},
		{name: "delimiter in nested value", key: "c/k", value: "10:30"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			doc := pwtext.New("", pwtext.WithDelimiter(':'))
			doc.Set(testCase.key, testCase.value)

			_, err := pwtext.Marshal(doc)

			require.ErrorIs(t, err, pwtext.ErrUnencodable)
		})
	}
}

func TestEncode_DelimiterInValueWithoutDelimiterMode(t *testing.T) {
	t.Parallel()

	doc := pwtext.New(`k "x=y";`)

	out, err := pwtext.Marshal(doc)
	require.NoError(t, err)

	assert.True(t, pwtext.New(string(out)).Equal(doc))
}

func TestEncode_RoundTripKeepsInvalidUTF8(t *testing.T) {
	t.Parallel()

	doc := pwtext.New("k=1;", pwtext.WithDelimiter('='))
	doc.Set("k", "a\xffb")
	doc.Set("c\xfe/leaf", "\xc3")

	out, err := pwtext.Marshal(doc)
	require.NoError(t, err)

	reparsed := pwtext.New(string(out), pwtext.WithDelimiter('='))

	assert.True(t, reparsed.Equal(doc), "got %q", reparsed.Map())
	assert.Equal(t, "a\xffb", reparsed.Value("k"))
}

type failingWriter struct{}

var errWriteFailed = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

func TestEncode_WriteError(t *testing.T) {
	t.Parallel()

	err := pwtext.Encode(failingWriter{}, pwtext.New(sample))

	require.ErrorIs(t, err, errWriteFailed)
}
