package handlers

import (
	"delivery-thermal-service/internal/platform/obs"
	"delivery-thermal-service/internal/ports"
	"net/http"
)

// HealthHandler reports liveness and whether the catalog answers.
type HealthHandler struct {
	Catalog ports.Catalog
}

func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	if _, err := h.Catalog.AllTransports(r.Context()); err != nil {
		obs.Logger(r.Context()).Error().Err(err).Msg("health: catalog unavailable")
		writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "catalog": "unavailable"})
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok", "catalog": "ok"})
}
