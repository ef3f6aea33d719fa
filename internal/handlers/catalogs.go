package handlers

import (
	"net/http"

	"promptforge/internal/catalog"
)

// Catalogs serves the static selector tables the builder UI renders:
// design patterns, UI libraries, fonts, providers, AI tools, and themes.
func Catalogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Catalogs())
}
