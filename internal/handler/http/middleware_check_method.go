// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-travel-board/internal/utils"
)

// notFound is registered via [chi.Mux.NotFound] so unknown paths answer with
// the same JSON error body as every other failure.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "resource not found", http.StatusNotFound)
}

// methodNotAllowed is registered via [chi.Mux.MethodNotAllowed]. chi has
// already set the Allow header by the time it runs.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
}
