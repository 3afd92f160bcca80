package handlers

import (
	"net/http"

	"github.com/styleadvisor/styleadvisor/internal/catalog"
)

// HandleCatalog serves GET /api/catalogs/{domain}
func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, r, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	domain, ok := h.domainFromPath(w, r, "/api/catalogs/")
	if !ok {
		return
	}

	h.writeJSON(w, catalog.For(domain))
}
