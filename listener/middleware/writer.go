package middleware

import "net/http"

// trackingWriter records the status code and body size of a response.
type trackingWriter struct {
	http.ResponseWriter

	status int
	bytes  int
}

func (w *trackingWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}

	w.ResponseWriter.WriteHeader(code)
}

func (w *trackingWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n

	return n, err //nolint:wrapcheck
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *trackingWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// written reports whether the response has been committed.
func (w *trackingWriter) written() bool {
	return w.status != 0
}

// track returns w as a trackingWriter, reusing it when an outer middleware already wrapped it.
func track(w http.ResponseWriter) *trackingWriter {
	if tw, ok := w.(*trackingWriter); ok {
		return tw
	}

	return &trackingWriter{ResponseWriter: w}
}
