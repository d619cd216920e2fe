// Package middleware holds the HTTP middleware wrapped around the document handler.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behaviour.
type Middleware func(http.Handler) http.Handler

// Chain wraps handler with middlewares. The first middleware is the outermost,
// so it sees the request first and the response last. Nil entries are skipped.
func Chain(handler http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] == nil {
			continue
		}

		handler = middlewares[i](handler)
	}

	return handler
}
