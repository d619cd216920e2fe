// Package config loads pwtext documents and decodes them into configuration structs.
//
// The package uses an interface-based design with four extension points:
//   - Parser: decodes raw data into a config struct, with path navigation support
//   - DataFetcher: retrieves raw config text (file, stdin, etc.)
//   - Validator: validates config after parsing
//   - Defaulter: applies default values before validation
//
// # Path Navigation
//
// Provider accepts a path that targets a container within the document. Paths
// use the key-path separator of the format, a slash:
//
//	"services/api"              -> entries under services { api { ... } }
//	"database"                  -> entries under database { ... }
//	""                          -> entire document
//
// # Documents
//
// DocumentProvider skips struct decoding and yields the flattened
// *pwtext.Document itself, for callers that work with key paths directly.
//
// # Example
//
//	type APIConfig struct {
//	    Timeout int    `pwtext:"timeout"`
//	    BaseURL string `pwtext:"base_url"`
//	}
//
//	fetcher, err := filefetcher.NewFetcher("config.txt")()
//	if err != nil {
//	    return err
//	}
//
//	provider := config.Provider(&APIConfig{}, "services/api")
//	cfg, err := provider(textparser.NewParser(), fetcher)
package config
