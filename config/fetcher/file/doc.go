// Package file provides a file-based DataFetcher implementation for the config package.
//
// The whole file is read into memory at construction time and cached, so every
// Fetch returns the same text the document was parsed from. The text format has
// no streaming form; WithMaxSize bounds how much is buffered.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("config.txt", file.WithMaxSize(1<<20))()
//	if err != nil {
//	    // file not found, permission denied, path is directory, file too large
//	}
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - Construction returns error if file cannot be read, is a directory or exceeds the size limit
//   - Errors include the filepath for easier debugging
//   - Use errors.Is with ErrPathIsDirectory or ErrFileTooLarge to tell them apart
package file
