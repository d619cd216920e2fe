// Package logging provides structured logging using Go's standard library log/slog.
// It writes JSON (the default) or logfmt-style text and integrates with Uber's Fx
// dependency injection framework through the app package.
package logging
