package handlers

import (
	"delivery-thermal-service/internal/api/dto"
	"delivery-thermal-service/internal/domain"
	"delivery-thermal-service/internal/platform/obs"
	"delivery-thermal-service/internal/ports"
	"delivery-thermal-service/internal/services"
	"errors"
	"math"
	"net/http"
	"strings"
)

const maxProfilePoints = 500

type SimulationHandler struct {
	Sim *services.Simulator
	// Provider resolves origin/destination requests. Nil disables them.
	Provider ports.DistanceProvider
}

// Create runs one simulation, by distance or by address pair.
func (h *SimulationHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodPost) {
		return
	}

	var req dto.SimulationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)
	byRoute := origin != "" || destination != ""

	switch {
	case req.DistanceKm != nil && byRoute:
		writeError(w, r, http.StatusBadRequest, "give either distance_km or origin/destination, not both")
		return
	case req.DistanceKm == nil && !byRoute:
		writeError(w, r, http.StatusBadRequest, "distance_km or origin/destination is required")
		return
	case byRoute && (origin == "" || destination == ""):
		writeError(w, r, http.StatusBadRequest, "origin and destination are both required")
		return
	case req.DistanceKm != nil && (*req.DistanceKm < 0 || math.IsNaN(*req.DistanceKm) || math.IsInf(*req.DistanceKm, 0)):
		writeError(w, r, http.StatusBadRequest, "distance_km must be a non-negative number")
		return
	case req.ProfilePoints < 0 || req.ProfilePoints > maxProfilePoints:
		writeError(w, r, http.StatusBadRequest, "profile_points must be between 0 and 500")
		return
	case byRoute && h.Provider == nil:
		writeError(w, r, http.StatusNotImplemented, "address lookup is not configured")
		return
	}

	var (
		rep *domain.Report
		err error
	)
	if byRoute {
		rep, err = h.Sim.RunRoute(r.Context(), services.RouteRequest{
			ProductID:   req.ProductID,
			PackagingID: req.PackagingID,
			TransportID: req.TransportID,
			Origin:      origin,
			Destination: destination,
		}, h.Provider)
	} else {
		rep, err = h.Sim.Run(r.Context(), req.ProductID, req.PackagingID, req.TransportID, *req.DistanceKm)
	}

	if err != nil {
		var nf *domain.NotFoundError
		switch {
		case errors.As(err, &nf):
			writeError(w, r, http.StatusNotFound, nf.Error())
		case byRoute:
			obs.Logger(r.Context()).Error().Err(err).Msg("simulate route")
			writeError(w, r, http.StatusBadGateway, "distance lookup failed")
		default:
			obs.Logger(r.Context()).Error().Err(err).Msg("simulate")
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	res := dto.FromReport(rep)
	if req.ProfilePoints > 0 {
		model := services.NewThermalModel(rep.Input.Food, rep.Input.Packaging)
		for minute, temp := range model.Profile(rep.Input.TravelMinutes, req.ProfilePoints) {
			res.Profile = append(res.Profile, dto.ProfilePoint{Minute: minute, TempC: temp})
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}
