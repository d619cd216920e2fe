// Package reader provides a DataFetcher that buffers an io.Reader, such as standard input.
package reader

import (
	"errors"
	"fmt"
	"io"
)

// ErrTooLarge is returned when the input exceeds the configured size limit.
var ErrTooLarge = errors.New("input exceeds size limit")

// Fetcher implements config.DataFetcher by reading its source to the end once, at construction.
type Fetcher struct {
	data []byte
}

// NewFetcher returns a constructor that drains r into memory. A positive maxSize
// bounds the number of bytes accepted.
func NewFetcher(r io.Reader, maxSize int64) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		source := r
		if maxSize > 0 {
			source = io.LimitReader(r, maxSize+1)
		}

		data, err := io.ReadAll(source)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}

		if maxSize > 0 && int64(len(data)) > maxSize {
			return nil, fmt.Errorf("limit %d bytes: %w", maxSize, ErrTooLarge)
		}

		return &Fetcher{data: data}, nil
	}
}

// Fetch returns a copy of the buffered input.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
