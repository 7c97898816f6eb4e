package api

import (
	"delivery-thermal-service/internal/api/handlers"
	"delivery-thermal-service/internal/ports"
	"delivery-thermal-service/internal/services"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// provider may be nil, which disables address-based simulations.
func NewRouter(sim *services.Simulator, catalog ports.Catalog, provider ports.DistanceProvider) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Catalog: catalog}
	catalogHandler := &handlers.CatalogHandler{Catalog: catalog}
	simHandler := &handlers.SimulationHandler{Sim: sim, Provider: provider}

	mux.HandleFunc("/health", healthHandler.Get)
	mux.HandleFunc("/catalog", catalogHandler.List)
	mux.HandleFunc("/simulations", simHandler.Create)
	mux.Handle("/metrics", promhttp.Handler())

	return requestIDMiddleware(loggingMiddleware(mux))
}
