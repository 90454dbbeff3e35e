// Package httpapi exposes the encoder's public contract over HTTP. It is an
// external collaborator of the core: every handler goes through the encoder,
// statistics, and history APIs only.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"k8s.io/klog/v2"

	"github.com/myatkaung/go-myanmarnames/encoder"
)

// Config holds runtime options for the HTTP server.
type Config struct {
	Address string
	Encoder *encoder.Encoder
}

// New constructs the HTTP server with its middleware stack and routes.
func New(cfg Config) *http.Server {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(30 * time.Second))

	h := &handlers{enc: cfg.Encoder}
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Route("/v1", func(r chi.Router) {
		r.Post("/encode", h.encode)
		r.Get("/stats", h.stats)
		r.Get("/history", h.history)
		r.Get("/history/export", h.export)
	})

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

type handlers struct {
	enc *encoder.Encoder
}

type encodeRequest struct {
	Name   string `json:"name"`
	Format string `json:"format"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func (h *handlers) encode(w http.ResponseWriter, r *http.Request) {
	var req encodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}
	format := encoder.Format(req.Format)
	if req.Format == "" {
		format = encoder.FormatShort
	}
	out, err := h.enc.Encode(req.Name, format)
	if err != nil {
		var verr *encoder.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Error(), Kind: verr.Kind.String()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) stats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.enc.Stats().Report())
}

func (h *handlers) history(w http.ResponseWriter, r *http.Request) {
	log := h.enc.History()
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		writeJSON(w, http.StatusOK, log.Tail(limit))
		return
	}
	writeJSON(w, http.StatusOK, log.All())
}

func (h *handlers) export(w http.ResponseWriter, r *http.Request) {
	log := h.enc.History()
	var err error
	switch format := r.URL.Query().Get("format"); format {
	case "", "jsonl":
		w.Header().Set("Content-Type", "application/x-ndjson")
		err = log.ExportJSONL(w)
	case "jsonl.gz":
		w.Header().Set("Content-Type", "application/gzip")
		err = log.ExportJSONLGzip(w)
	case "parquet":
		w.Header().Set("Content-Type", "application/vnd.apache.parquet")
		err = log.ExportParquet(w)
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown export format " + strconv.Quote(format)})
		return
	}
	if err != nil {
		// Headers are already out; all we can do is log.
		klog.Errorf("history export failed: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		klog.Errorf("writing response: %v", err)
	}
}
