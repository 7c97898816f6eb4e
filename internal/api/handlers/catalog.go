package handlers

import (
	"delivery-thermal-service/internal/api/dto"
	"delivery-thermal-service/internal/platform/obs"
	"delivery-thermal-service/internal/ports"
	"fmt"
	"net/http"
)

// CatalogHandler exposes the read-only product, packaging and transport
// tables.
type CatalogHandler struct {
	Catalog ports.Catalog
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	res, err := h.load(r)
	if err != nil {
		obs.Logger(r.Context()).Error().Err(err).Msg("list catalog")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *CatalogHandler) load(r *http.Request) (dto.CatalogResponse, error) {
	ctx := r.Context()

	products, err := h.Catalog.AllProducts(ctx)
	if err != nil {
		return dto.CatalogResponse{}, fmt.Errorf("products: %w", err)
	}
	packagings, err := h.Catalog.AllPackagings(ctx)
	if err != nil {
		return dto.CatalogResponse{}, fmt.Errorf("packagings: %w", err)
	}
	transports, err := h.Catalog.AllTransports(ctx)
	if err != nil {
		return dto.CatalogResponse{}, fmt.Errorf("transports: %w", err)
	}

	res := dto.CatalogResponse{
		Products:   make([]dto.ProductResponse, 0, len(products)),
		Packagings: make([]dto.PackagingResponse, 0, len(packagings)),
		Transports: make([]dto.TransportResponse, 0, len(transports)),
	}
	for _, p := range products {
		res.Products = append(res.Products, dto.ProductResponse{
			ID:            p.ID,
			Name:          p.Name,
			Category:      p.Category.String(),
			VolumeL:       p.VolumeL,
			MassKg:        p.MassKg,
			InitialTempC:  p.InitialTempC,
			MeltSensitive: p.MeltSensitive,
		})
	}
	for _, p := range packagings {
		res.Packagings = append(res.Packagings, dto.PackagingResponse{ID: p.ID, Name: p.Name, UValue: p.UValue})
	}
	for _, t := range transports {
		res.Transports = append(res.Transports, dto.TransportResponse{
			ID:       t.ID,
			Name:     t.Name,
			SpeedKmh: t.SpeedKmh,
			Mode:     string(t.Mode),
		})
	}
	return res, nil
}
