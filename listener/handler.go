package listener

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/PascalWirtz/pwtext"
	"github.com/PascalWirtz/pwtext/export"
	"github.com/PascalWirtz/pwtext/listener/middleware"
)

// formatParam is the query parameter selecting the export format of /values.
const formatParam = "format"

type errorBody struct {
	Error string `json:"error"`
}

type entryBody struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type healthBody struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
}

// NewHandler returns the read-only HTTP API for doc:
//
//	GET /values            all entries, JSON unless ?format= names another export format
//	GET /values/{path...}  one entry as {"key","value"}, or the entries below a container
//	GET /healthz           200 when doc is valid, 503 otherwise
//
// Requests pass through request ID, access logging and panic recovery middleware.
func NewHandler(doc *pwtext.Document) http.Handler {
	h := &handler{doc: doc}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /values", h.values)
	mux.HandleFunc("GET /values/{path...}", h.value)
	mux.HandleFunc("GET /healthz", h.health)

	return middleware.Chain(mux, middleware.RequestID(), middleware.Logging(), middleware.Recovery())
}

type handler struct {
	doc *pwtext.Document
}

func (h *handler) values(w http.ResponseWriter, r *http.Request) {
	format := export.FormatJSON

	if name := r.URL.Query().Get(formatParam); name != "" {
		parsed, err := export.ParseFormat(name)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})

			return
		}

		format = parsed
	}

	var buf bytes.Buffer

	err := export.Encode(&buf, h.doc, format)

	switch {
	case errors.Is(err, pwtext.ErrUnencodable):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error()})

		return
	case err != nil:
		slog.Error("failed to encode document", "format", format, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "encoding failed"})

		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	_, _ = w.Write(buf.Bytes())
}

func (h *handler) value(w http.ResponseWriter, r *http.Request) {
	path := r.PathValue("path")

	if value, ok := pwtext.Lookup[string](h.doc, path); ok {
		writeJSON(w, http.StatusOK, entryBody{Key: path, Value: value})

		return
	}

	if section, ok := h.doc.Section(path); ok {
		writeJSON(w, http.StatusOK, section.Map())

		return
	}

	writeJSON(w, http.StatusNotFound, errorBody{Error: "path not found: " + path})
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	if !h.doc.Valid() {
		writeJSON(w, http.StatusServiceUnavailable, healthBody{Status: "invalid", Entries: h.doc.Len()})

		return
	}

	writeJSON(w, http.StatusOK, healthBody{Status: "ok", Entries: h.doc.Len()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
