package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/styleadvisor/styleadvisor/internal/analysis"
	"github.com/styleadvisor/styleadvisor/internal/catalog"
	"github.com/styleadvisor/styleadvisor/internal/images"
)

// Analyzer runs one photo through the analysis pipeline
type Analyzer interface {
	Analyze(ctx context.Context, image []byte, domain catalog.Domain) analysis.Result
}

// Downloader retrieves a photo by URL
type Downloader interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Observer receives per-request metrics
type Observer interface {
	ObserveHTTPRequest(path, method, statusCode string, elapsed time.Duration)
}

type Handler struct {
	analyzer  Analyzer
	fetcher   Downloader
	observer  Observer
	maxUpload int64
}

// Option configures a Handler
type Option func(*Handler)

// WithDownloader replaces the default URL fetcher
func WithDownloader(d Downloader) Option {
	return func(h *Handler) {
		if d != nil {
			h.fetcher = d
		}
	}
}

// WithObserver records request metrics on o
func WithObserver(o Observer) Option {
	return func(h *Handler) {
		if o != nil {
			h.observer = o
		}
	}
}

// WithMaxUpload sets the photo size limit in bytes
func WithMaxUpload(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxUpload = n
		}
	}
}

func New(analyzer Analyzer, opts ...Option) *Handler {
	h := &Handler{
		analyzer:  analyzer,
		maxUpload: images.DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.fetcher == nil {
		h.fetcher = images.NewFetcher(h.maxUpload)
	}
	return h
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, message string, code int) {
	slog.Error(message, "request_id", RequestID(r.Context()), "status", code)
	http.Error(w, message, code)
}

// domainFromPath extracts and validates the trailing {domain} segment
func (h *Handler) domainFromPath(w http.ResponseWriter, r *http.Request, prefix string) (catalog.Domain, bool) {
	raw := strings.TrimPrefix(r.URL.Path, prefix)
	if raw == "" || strings.Contains(raw, "/") {
		h.writeError(w, r, "Domain is required, one of: "+domainList(), http.StatusBadRequest)
		return "", false
	}

	domain, err := catalog.ParseDomain(raw)
	if err != nil {
		h.writeError(w, r, "Unsupported domain "+raw+", expected one of: "+domainList(), http.StatusBadRequest)
		return "", false
	}
	return domain, true
}

func domainList() string {
	names := make([]string, 0, len(catalog.Domains()))
	for _, d := range catalog.Domains() {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}
