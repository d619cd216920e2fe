// Package text provides the pwtext parser implementation for the config package.
//
// The parser flattens the raw text with pwtext.New, selects the container named
// by the path with Document.Section, and fills the target with pwtext.Decode.
//
// Usage:
//
//	parser := text.NewParser(pwtext.WithDelimiter('='))
//	var cfg Config
//	err := parser.Parse(data, &cfg, "api/permissions")
//
// Path Handling:
//   - Empty path "" -> decode the entire document
//   - Single container "api" -> entries under api { ... }
//   - Nested path "api/permissions" -> entries under api { permissions { ... } }
package text
