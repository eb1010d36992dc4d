package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alhambra-events/api/internal/catalog"
)

// CatalogHandler exposes the read-only reference data the editor builds
// quotes from.
type CatalogHandler struct {
	cat *catalog.Catalog
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{cat: cat}
}

// RegisterRoutes registers catalog endpoints on the given Chi router.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/packages", h.Packages)
	r.Get("/menu", h.Menu)
	r.Get("/equipment", h.Equipment)
	r.Get("/kits", h.Kits)
}

// Packages returns all catering packages.
func (h *CatalogHandler) Packages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cat.Packages())
}

// Menu returns all menu items.
func (h *CatalogHandler) Menu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cat.Menu())
}

// Equipment returns all rentable equipment.
func (h *CatalogHandler) Equipment(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cat.Equipment())
}

// Kits returns the internal packing lists for external events.
func (h *CatalogHandler) Kits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cat.InternalKits())
}
