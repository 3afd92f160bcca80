package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/styleadvisor/styleadvisor/internal/catalog"
	"github.com/styleadvisor/styleadvisor/internal/images"
)

// AnalyzeResponse is returned for every analyzed photo, including fallbacks
type AnalyzeResponse struct {
	Domain catalog.Domain `json:"domain"`
	Result any            `json:"result"`
	Error  string         `json:"error,omitempty"`
}

// multipart bodies carry headers and boundaries on top of the photo itself
const multipartOverhead = 1 << 20

// HandleAnalyze serves POST /api/analyze/{domain}
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, r, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	domain, ok := h.domainFromPath(w, r, "/api/analyze/")
	if !ok {
		return
	}

	var (
		photo []byte
		err   error
	)
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		photo, err = h.readURLPhoto(r)
	} else {
		photo, err = h.readUploadedPhoto(w, r)
	}
	if err != nil {
		h.writeError(w, r, err.Error(), http.StatusBadRequest)
		return
	}

	if info, err := images.Inspect(photo); err != nil {
		slog.Warn("Unrecognized image format, sending as is", "request_id", RequestID(r.Context()), "err", err)
	} else {
		slog.Info("Analyzing photo", "request_id", RequestID(r.Context()), "domain", domain, "format", info.Format, "width", info.Width, "height", info.Height)
	}

	result := h.analyzer.Analyze(r.Context(), photo, domain)

	h.writeJSON(w, AnalyzeResponse{
		Domain: domain,
		Result: result.Record(),
		Error:  result.Message(),
	})
}

func (h *Handler) readURLPhoto(r *http.Request) ([]byte, error) {
	var request struct {
		ImageURL string `json:"image_url"`
	}

	if err := json.NewDecoder(http.MaxBytesReader(nil, r.Body, multipartOverhead)).Decode(&request); err != nil {
		return nil, errors.New("Invalid JSON: " + err.Error())
	}

	if request.ImageURL == "" {
		return nil, errors.New("image_url is required")
	}

	photo, err := h.fetcher.Fetch(r.Context(), request.ImageURL)
	if err != nil {
		return nil, errors.New("Failed to process image URL: " + err.Error())
	}
	return photo, nil
}

func (h *Handler) readUploadedPhoto(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+multipartOverhead)

	file, _, err := r.FormFile("file")
	if err != nil {
		file, _, err = r.FormFile("files")
		if err != nil {
			return nil, errors.New("Failed to read file: " + err.Error())
		}
	}
	defer file.Close()

	photo, err := images.ReadLimited(file, h.maxUpload)
	if err != nil {
		if errors.Is(err, images.ErrTooLarge) {
			return nil, errors.New("File too large")
		}
		return nil, errors.New("Failed to read file contents: " + err.Error())
	}
	return photo, nil
}
